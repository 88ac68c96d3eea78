package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/billing"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
	"github.com/restrodesk/restrodesk-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer        printer.Printer
	billRepo       repository.BillRepository
	holdBillRepo   repository.HoldBillRepository
	restaurantRepo repository.RestaurantRepository
	sequenceRepo   repository.SequenceRepository
	printerType    string
	width          int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	holdBillRepo repository.HoldBillRepository,
	restaurantRepo repository.RestaurantRepository,
	sequenceRepo repository.SequenceRepository,
	printerType string,
	width int,
) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:        p,
		billRepo:       billRepo,
		holdBillRepo:   holdBillRepo,
		restaurantRepo: restaurantRepo,
		sequenceRepo:   sequenceRepo,
		printerType:    printerType,
		width:          width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

func (s *PrinterService) receiptHeader(ctx context.Context, restaurantID uuid.UUID) entity.ReceiptHeader {
	header := entity.ReceiptHeader{RestaurantName: "RestroDesk"}
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err == nil && restaurant != nil {
		header.RestaurantName = restaurant.Name
		header.Address = restaurant.Address
		header.Phone = restaurant.Phone
		header.GSTIN = restaurant.GSTIN
	}
	return header
}

// PrintBill formats and prints a bill's customer receipt, bumping its
// print count. The receipt is returned either way so the client can render
// it when no printer hardware is configured.
func (s *PrinterService) PrintBill(ctx context.Context, billID uuid.UUID) (*entity.Receipt, int, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, 0, err
	}
	if bill == nil {
		return nil, 0, apperror.NewNotFoundError("Bill")
	}

	receipt := &entity.Receipt{
		Header:        s.receiptHeader(ctx, bill.RestaurantID),
		BillNumber:    bill.BillNumber,
		TableNumber:   bill.TableNumber,
		Date:          bill.CreatedAt.Format("2006-01-02 15:04"),
		PaymentMethod: string(bill.PaymentMethod),
		Subtotal:      bill.Subtotal,
		CGST:          bill.CGST,
		SGST:          bill.SGST,
		Discount:      bill.DiscountAmount,
		Total:         bill.TotalAmount,
	}

	for _, item := range bill.Items {
		name := item.ItemName
		if item.Variant != nil {
			name = fmt.Sprintf("%s (%s)", item.ItemName, item.Variant.Name)
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.Price * float64(item.Quantity),
		})
	}

	printCount, err := s.billRepo.IncrementPrintCount(ctx, billID)
	if err != nil {
		return nil, 0, err
	}

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", billID, err)
		return receipt, printCount, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, printCount, nil
}

// PrintKitchenTicket prints the kitchen order for a staged hold bill.
func (s *PrinterService) PrintKitchenTicket(ctx context.Context, holdBillID uuid.UUID) (*entity.KitchenTicket, error) {
	holdBill, err := s.holdBillRepo.GetByID(ctx, holdBillID)
	if err != nil {
		return nil, err
	}
	if holdBill == nil {
		return nil, apperror.NewNotFoundError("Hold bill")
	}

	kotNumber, err := s.sequenceRepo.Next(ctx, entity.CounterKOTNumber)
	if err != nil {
		return nil, err
	}

	ticket := &entity.KitchenTicket{
		KOTNumber:   kotNumber,
		TableNumber: holdBill.TableNumber,
		Date:        holdBill.CreatedAt.Format("2006-01-02 15:04"),
		Names:       holdBill.Names,
	}
	for _, item := range holdBill.Items {
		name := item.ItemName
		if item.Variant != nil {
			name = fmt.Sprintf("%s (%s)", item.ItemName, item.Variant.Name)
		}
		ticket.Items = append(ticket.Items, entity.ReceiptItem{
			Name:     name,
			Quantity: item.Quantity,
		})
	}

	data := s.formatKitchenTicket(ticket)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (hold bill %s): %v", holdBillID, err)
		return ticket, fmt.Errorf("failed to print kitchen ticket: %w", err)
	}
	return ticket, nil
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.RestaurantName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill No:", fmt.Sprintf("%d", r.BillNumber)).
		KeyValue("Table:", fmt.Sprintf("%d", r.TableNumber)).
		KeyValue("Date:", r.Date)

	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.MoneyLine("Subtotal:", r.Subtotal)
	if r.CGST > 0 || r.SGST > 0 {
		doc.TaxLine("CGST", billing.CGSTRate*100, r.CGST).
			TaxLine("SGST", billing.SGSTRate*100, r.SGST)
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.SetBold(true).
		MoneyLine("TOTAL:", r.Total).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// formatKitchenTicket converts a KitchenTicket into ESC/POS bytes.
// No prices: the kitchen only needs table, quantities and names.
func (s *PrinterService) formatKitchenTicket(t *entity.KitchenTicket) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		TextF("TABLE %d", t.TableNumber).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		SetAlign(printer.AlignLeft)

	doc.KeyValue("KOT No:", fmt.Sprintf("%d", t.KOTNumber))
	doc.KeyValue("Time:", t.Date)
	if t.Names != "" {
		doc.KeyValue("For:", t.Names)
	}

	doc.Separator('-')

	doc.SetFontSize(printer.FontTall)
	for _, item := range t.Items {
		doc.TextF("%dx %s", item.Quantity, item.Name)
	}
	doc.SetFontSize(printer.FontNormal)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
