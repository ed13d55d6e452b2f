package main

import (
	"fmt"
	"log"

	"mtg-card-vault/internal/config"
	"mtg-card-vault/internal/router"
	"mtg-card-vault/internal/store"
	"mtg-card-vault/internal/util"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// JWT 密钥必须存在；开发模式下缺失时生成随机密钥（重启后旧 token 全部失效）
	if cfg.JWT.Secret == "" {
		if cfg.Server.Mode == "release" {
			log.Fatal("jwt secret must be set in release mode")
		}
		secret, err := util.RandomString(32)
		if err != nil {
			log.Fatalf("generate jwt secret: %v", err)
		}
		cfg.JWT.Secret = secret
		log.Print("warning: jwt secret not set, generated a random one (tokens will not survive a restart)")
	}

	// in-memory stores
	cards := store.NewCardStore()
	users := store.NewUserStore(cards)
	activities := store.NewActivityStore(100)

	// 开发模式下预置演示账号
	if cfg.Server.Mode != "release" {
		if err := store.Seed(users, cards); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	// setup router
	r := router.SetupRouter(cfg, users, cards, activities)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
