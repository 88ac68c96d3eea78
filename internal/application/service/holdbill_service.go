package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/restrodesk/restrodesk-api/internal/domain/billing"
	"github.com/restrodesk/restrodesk-api/internal/domain/entity"
	"github.com/restrodesk/restrodesk-api/internal/domain/enum"
	"github.com/restrodesk/restrodesk-api/internal/domain/repository"
	"github.com/restrodesk/restrodesk-api/pkg/apperror"
)

// HoldBillService stages and mutates uncommitted table orders
type HoldBillService struct {
	holdBillRepo repository.HoldBillRepository
	productRepo  repository.ProductRepository
	tableRepo    repository.TableRepository
}

// NewHoldBillService creates a new hold bill service
func NewHoldBillService(
	holdBillRepo repository.HoldBillRepository,
	productRepo repository.ProductRepository,
	tableRepo repository.TableRepository,
) *HoldBillService {
	return &HoldBillService{
		holdBillRepo: holdBillRepo,
		productRepo:  productRepo,
		tableRepo:    tableRepo,
	}
}

// HoldBillItemInput is one requested order line, by catalog reference.
type HoldBillItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Variant   string
	Names     string
}

// CreateHoldBillInput represents the create hold bill input
type CreateHoldBillInput struct {
	TableID            uuid.UUID
	Items              []HoldBillItemInput
	DiscountPercentage float64
	DiscountAmount     float64
	PaymentMode        string
	Names              string
}

// InvalidProduct describes one rejected line in a partial update.
type InvalidProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Reason    string    `json:"reason"`
}

// snapshotItems resolves requested lines against the catalog and freezes
// name, price, category and pricing type onto each line. strict mode fails
// on the first bad line; otherwise bad lines are collected and skipped.
func (s *HoldBillService) snapshotItems(ctx context.Context, inputs []HoldBillItemInput, strict bool) (entity.BillItems, []InvalidProduct, error) {
	ids := make([]uuid.UUID, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var items entity.BillItems
	var invalid []InvalidProduct

	for _, in := range inputs {
		product, exists := productMap[in.ProductID]
		if !exists {
			if strict {
				return nil, nil, apperror.NewBadRequestError(fmt.Sprintf("Product %s not found", in.ProductID))
			}
			invalid = append(invalid, InvalidProduct{ProductID: in.ProductID, Reason: "product not found"})
			continue
		}

		if !product.InStock {
			if strict {
				return nil, nil, apperror.NewBadRequestError(fmt.Sprintf("%s is out of stock", product.ItemName))
			}
			invalid = append(invalid, InvalidProduct{ProductID: in.ProductID, Reason: "out of stock"})
			continue
		}

		item := entity.BillItem{
			ProductID:   product.ID,
			ItemName:    product.ItemName,
			Quantity:    in.Quantity,
			Price:       product.UnitPrice(),
			PricingType: product.PricingType,
			Category:    product.Category,
			Names:       in.Names,
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}

		if in.Variant != "" {
			variant := product.FindVariant(in.Variant)
			if variant == nil {
				if strict {
					return nil, nil, apperror.NewBadRequestError(
						fmt.Sprintf("Variant %q not found for %s", in.Variant, product.ItemName))
				}
				invalid = append(invalid, InvalidProduct{ProductID: in.ProductID, Reason: "variant not found"})
				continue
			}
			item.Price = variant.Price
			item.Variant = &entity.ItemVariant{Name: variant.Name, Price: variant.Price}
		}

		items = append(items, item)
	}

	return items, invalid, nil
}

// CreateHoldBill stages a new order on a table and marks it occupied
func (s *HoldBillService) CreateHoldBill(ctx context.Context, input *CreateHoldBillInput) (*entity.HoldBill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}

	paymentMode := enum.PaymentMode(input.PaymentMode)
	if input.PaymentMode == "" {
		paymentMode = enum.PaymentModeCash
	}
	if !paymentMode.Valid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid payment mode %q", input.PaymentMode))
	}

	if err := billing.ValidateDiscountPercentage(input.DiscountPercentage); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	table, err := s.tableRepo.GetByID(ctx, input.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	items, _, err := s.snapshotItems(ctx, input.Items, true)
	if err != nil {
		return nil, err
	}

	totals := billing.Calculate(items.Lines(), input.DiscountPercentage, input.DiscountAmount)

	holdBill := &entity.HoldBill{
		TableID:            table.ID,
		TableNumber:        table.TableNumber,
		Items:              items,
		Status:             enum.HoldBillStatusHold,
		DiscountPercentage: input.DiscountPercentage,
		PaymentMode:        paymentMode,
		Names:              input.Names,
	}
	holdBill.ApplyTotals(totals)

	if err := s.holdBillRepo.Create(ctx, holdBill); err != nil {
		return nil, err
	}

	if table.Status != enum.TableStatusOccupied {
		if err := s.tableRepo.UpdateStatus(ctx, table.ID, enum.TableStatusOccupied); err != nil {
			return nil, err
		}
	}

	return holdBill, nil
}

// UpdateHoldBill merges new items into an open hold bill. Lines that no
// longer resolve against the catalog are skipped and reported, not fatal:
// the waiter keeps what was orderable and sees what was not.
func (s *HoldBillService) UpdateHoldBill(ctx context.Context, id uuid.UUID, inputs []HoldBillItemInput) (*entity.HoldBill, []InvalidProduct, error) {
	holdBill, err := s.holdBillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if holdBill == nil {
		return nil, nil, apperror.NewNotFoundError("Hold bill")
	}
	if holdBill.Status != enum.HoldBillStatusHold {
		return nil, nil, apperror.NewBadRequestError("Only open hold bills can be updated")
	}
	if len(inputs) == 0 {
		return nil, nil, apperror.NewBadRequestError("At least one item is required")
	}

	items, invalid, err := s.snapshotItems(ctx, inputs, false)
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		appErr := apperror.NewBadRequestError("No valid items in request")
		for _, p := range invalid {
			appErr.Errors = append(appErr.Errors, apperror.FieldError{
				Field:   p.ProductID.String(),
				Message: p.Reason,
			})
		}
		return nil, invalid, appErr
	}

	holdBill.Items = holdBill.Items.Merge(items)
	totals := billing.Calculate(holdBill.Items.Lines(), holdBill.DiscountPercentage, holdBill.DiscountAmount)
	holdBill.ApplyTotals(totals)

	if err := s.holdBillRepo.Update(ctx, holdBill); err != nil {
		return nil, nil, err
	}
	return holdBill, invalid, nil
}

// GetHoldBill retrieves a hold bill by ID
func (s *HoldBillService) GetHoldBill(ctx context.Context, id uuid.UUID) (*entity.HoldBill, error) {
	holdBill, err := s.holdBillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if holdBill == nil {
		return nil, apperror.NewNotFoundError("Hold bill")
	}
	return holdBill, nil
}

// ListHoldBills lists hold bills, optionally filtered by status
func (s *HoldBillService) ListHoldBills(ctx context.Context, status *enum.HoldBillStatus) ([]entity.HoldBill, error) {
	return s.holdBillRepo.List(ctx, status)
}

// ListOpenByTable returns a table's open hold bills, newest first.
// The repository serves them oldest-first for finalization, so the
// listing reverses.
func (s *HoldBillService) ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.HoldBill, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	holdBills, err := s.holdBillRepo.ListOpenByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(holdBills)-1; i < j; i, j = i+1, j-1 {
		holdBills[i], holdBills[j] = holdBills[j], holdBills[i]
	}
	return holdBills, nil
}

// ResumeHoldBill pulls a staged order back into the cart. The order is
// done being held, so it leaves the open set, but the table stays
// occupied until the diner settles or cancels.
func (s *HoldBillService) ResumeHoldBill(ctx context.Context, id uuid.UUID) (*entity.HoldBill, error) {
	holdBill, err := s.holdBillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if holdBill == nil {
		return nil, apperror.NewNotFoundError("Hold bill")
	}
	if holdBill.Status != enum.HoldBillStatusHold {
		return nil, apperror.NewBadRequestError("Only open hold bills can be resumed")
	}

	if err := s.holdBillRepo.UpdateStatus(ctx, id, enum.HoldBillStatusResumed); err != nil {
		return nil, err
	}
	holdBill.Status = enum.HoldBillStatusResumed
	return holdBill, nil
}

// CancelHoldBill voids a staged order regardless of its status. The table
// frees up once no other open hold bills reference it.
func (s *HoldBillService) CancelHoldBill(ctx context.Context, id uuid.UUID) error {
	holdBill, err := s.holdBillRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if holdBill == nil {
		return apperror.NewNotFoundError("Hold bill")
	}

	if err := s.holdBillRepo.UpdateStatus(ctx, id, enum.HoldBillStatusCancelled); err != nil {
		return err
	}

	remaining, err := s.holdBillRepo.CountOpenByTable(ctx, holdBill.TableID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return s.tableRepo.UpdateStatus(ctx, holdBill.TableID, enum.TableStatusAvailable)
	}
	return nil
}
