package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mtg-card-vault/internal/middleware"
	"mtg-card-vault/internal/store"
	"mtg-card-vault/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 负责收藏导出接口
type ExportHandler struct {
	Cards store.CardStore
}

func NewExportHandler(cards store.CardStore) *ExportHandler {
	return &ExportHandler{Cards: cards}
}

// ExportCSV 导出收藏为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	cards := h.Cards.Get(username)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"cards_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// 写入表头
	writer.Write([]string{"ID", "Name", "Type", "Rarity", "Set", "Image"})

	// 写入数据
	for _, card := range cards {
		writer.Write([]string{
			strconv.FormatUint(card.ID, 10),
			card.Name,
			card.Type,
			card.Rarity,
			card.SetName,
			card.Image,
		})
	}
}

// ExportXLSX 导出收藏为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	cards := h.Cards.Get(username)

	f := excelize.NewFile()
	sheetName := "Collection"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	// 设置表头
	headers := []string{"ID", "Name", "Type", "Rarity", "Set", "Image"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, name)
	}

	// 写入数据
	for idx, card := range cards {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), card.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), card.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), card.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), card.Rarity)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), card.SetName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), card.Image)
	}

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 22)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 20)
	f.SetColWidth(sheetName, "F", "F", 40)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"cards_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to export")
	}
}
