package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

const dateParamLayout = "2006-01-02"

type HistoryController struct {
	Ledger   *services.Ledger
	Exporter *services.Exporter
	Printer  *services.InvoicePrinter
	Reporter *services.Reporter
}

func NewHistoryController(ledger *services.Ledger) *HistoryController {
	return &HistoryController{
		Ledger:   ledger,
		Exporter: services.NewExporter(),
		Printer:  services.NewInvoicePrinter(),
		Reporter: services.NewReporter(),
	}
}

// filteredOrders applies the shared ?search= / ?start_date= / ?end_date=
// query filters. The date window only kicks in when both bounds are given.
func (hc *HistoryController) filteredOrders(c *gin.Context) ([]models.Order, error) {
	var from, to *time.Time
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr != "" && endStr != "" {
		start, err := time.Parse(dateParamLayout, startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date %q, want YYYY-MM-DD", startStr)
		}
		end, err := time.Parse(dateParamLayout, endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", endStr)
		}
		from, to = &start, &end
	}
	return hc.Ledger.Filter(c.Query("search"), from, to)
}

// GetOrders -> filtered history, newest first, plus the aggregate summary
func (hc *HistoryController) GetOrders(c *gin.Context) {
	orders, err := hc.filteredOrders(c)
	if err != nil {
		var se *models.StorageError
		if errors.As(err, &se) {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", gin.H{
		"orders":  orders,
		"summary": hc.Ledger.Summarize(orders),
	})
}

// ExportOrders -> the filtered history as an .xlsx download
func (hc *HistoryController) ExportOrders(c *gin.Context) {
	orders, err := hc.filteredOrders(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	f := hc.Exporter.OrdersToExcel(orders)
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := hc.Exporter.Filename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// RevenueReport -> PNG bar chart of daily revenue over the filtered history
func (hc *HistoryController) RevenueReport(c *gin.Context) {
	orders, err := hc.filteredOrders(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := hc.Reporter.DailyRevenueChart(orders, &buf); err != nil {
		if errors.Is(err, services.ErrNoReportData) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GetInvoice -> the printable receipt PDF for one saved order
func (hc *HistoryController) GetInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := hc.Ledger.FindByID(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("order %d not found", id))
		return
	}

	var buf bytes.Buffer
	if err := hc.Printer.RenderPDF(*order, &buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"invoice_%d.pdf\"", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
