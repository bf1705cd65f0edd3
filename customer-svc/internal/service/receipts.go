package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

var ErrNoOrder = errors.New("no order has been placed from this device")

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the review page of an order.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	link := fmt.Sprintf("%s/review?order_id=%d", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}

type LastOrderSource interface {
	LastOrder() (*PlacedOrder, bool)
}

type Receipts struct {
	qr     QRGenerator
	orders LastOrderSource
	title  string
}

func NewReceipts(qr QRGenerator, orders LastOrderSource, title string) *Receipts {
	return &Receipts{qr: qr, orders: orders, title: title}
}

func (r *Receipts) QRCode(orderID int) ([]byte, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	return r.qr.Generate(orderID)
}

// Receipt renders the last order placed from this device as a PDF with its
// review QR code.
func (r *Receipts) Receipt(ctx context.Context) ([]byte, error) {
	order, ok := r.orders.LastOrder()
	if !ok {
		return nil, ErrNoOrder
	}
	qrPNG, err := r.qr.Generate(order.OrderID)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, r.title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order #%d", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Table: %d", order.TableNumber))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Placed: "+order.PlacedAt.Format("02 Jan 2006 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, line := range order.Lines {
		pdf.CellFormat(90, 8, line.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, line.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(110, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, order.Total.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 10, pdf.GetY(), 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
