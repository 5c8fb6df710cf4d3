package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/money"
	"github.com/parvezislam45/inventory/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubShopRepo struct {
	shops map[uuid.UUID]*model.Shop
}

func newStubShopRepo() *stubShopRepo {
	return &stubShopRepo{shops: make(map[uuid.UUID]*model.Shop)}
}

func (r *stubShopRepo) Create(_ context.Context, s *model.Shop) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.shops[s.ID] = s
	return nil
}

func (r *stubShopRepo) List(_ context.Context) ([]model.Shop, error) {
	out := make([]model.Shop, 0, len(r.shops))
	for _, s := range r.shops {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubShopRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Shop, error) {
	s, ok := r.shops[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubShopRepo) Update(_ context.Context, s *model.Shop) error {
	r.shops[s.ID] = s
	return nil
}

func (r *stubShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.shops, id)
	return nil
}

var _ repository.ShopRepository = (*stubShopRepo)(nil)

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock = stock
	return nil
}

func (r *stubProductRepo) BrandSummary(_ context.Context) ([]dto.BrandStockSummary, error) {
	totals := make(map[string]*dto.BrandStockSummary)
	for _, p := range r.products {
		if p.Brand == nil || !p.IsAvailable {
			continue
		}
		row, ok := totals[p.Brand.BrandName]
		if !ok {
			row = &dto.BrandStockSummary{BrandName: p.Brand.BrandName}
			totals[p.Brand.BrandName] = row
		}
		row.TotalStock += int64(p.Stock)
		row.TotalTPPrice = row.TotalTPPrice.Add(p.TPPrice.MulQty(p.Stock))
	}
	out := make([]dto.BrandStockSummary, 0, len(totals))
	for _, row := range totals {
		out = append(out, *row)
	}
	return out, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	for i := range inv.Items {
		if inv.Items[i].ID == uuid.Nil {
			inv.Items[i].ID = uuid.New()
		}
		inv.Items[i].InvoiceID = inv.ID
	}
	inv.CreatedAt = time.Now().UTC()
	r.invoices[inv.ID] = inv
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInvoiceRepo) ListByShop(_ context.Context, shopID uuid.UUID, _ dto.ShopInvoiceFilter) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if inv.ShopID == shopID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) ListDelivered(_ context.Context) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if inv.IsDelivered {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInvoiceRepo) LastInvoiceNumber(_ context.Context, _ *gorm.DB, prefix string) (string, error) {
	// Longest first, then lexical — mirrors the SQL ordering so "-1000"
	// beats "-999".
	last := ""
	for _, inv := range r.invoices {
		if !strings.HasPrefix(inv.InvoiceNumber, prefix) {
			continue
		}
		n := inv.InvoiceNumber
		if len(n) > len(last) || (len(n) == len(last) && n > last) {
			last = n
		}
	}
	return last, nil
}

func (r *stubInvoiceRepo) FindItemByID(_ context.Context, id uuid.UUID) (*model.OrderItem, error) {
	for _, inv := range r.invoices {
		for i := range inv.Items {
			if inv.Items[i].ID == id {
				item := inv.Items[i]
				return &item, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInvoiceRepo) SaveItemTx(_ *gorm.DB, item *model.OrderItem) error {
	inv, ok := r.invoices[item.InvoiceID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range inv.Items {
		if inv.Items[i].ID == item.ID {
			inv.Items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubInvoiceRepo) DeleteItemTx(_ *gorm.DB, id uuid.UUID) error {
	for _, inv := range r.invoices {
		for i := range inv.Items {
			if inv.Items[i].ID == id {
				inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubInvoiceRepo) SaveTotalsTx(_ *gorm.DB, inv *model.Invoice) error {
	stored, ok := r.invoices[inv.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Subtotal = inv.Subtotal
	stored.DiscountAmount = inv.DiscountAmount
	stored.FinalTotal = inv.FinalTotal
	return nil
}

func (r *stubInvoiceRepo) MarkDelivered(_ context.Context, id uuid.UUID) error {
	inv, ok := r.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.IsDelivered = true
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *stubInvoiceRepo) DB() *gorm.DB { return nil }

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

// ── Fixtures ─────────────────────────────────────────────────────────────────

type invoiceFixture struct {
	svc      InvoiceService
	invoices *stubInvoiceRepo
	shops    *stubShopRepo
	products *stubProductRepo
	shop     *model.Shop
	prodA    *model.Product // tp 100.00
	prodB    *model.Product // tp 50.00
	prodC    *model.Product // tp 100.00
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	shops := newStubShopRepo()
	products := newStubProductRepo()
	invoices := newStubInvoiceRepo()

	shop := &model.Shop{
		ShopName:        "Corner Store",
		Address:         "12 Market Road",
		DiscountKazi:    money.RequirePercentFromString("5"),
		DiscountHarvest: money.RequirePercentFromString("10"),
	}
	require.NoError(t, shops.Create(context.Background(), shop))

	mk := func(name, tp string) *model.Product {
		p := &model.Product{
			ProductName: name,
			TPPrice:     money.RequireFromString(tp),
			MRPPrice:    money.RequireFromString(tp),
			IsAvailable: true,
		}
		require.NoError(t, products.Create(context.Background(), p))
		return p
	}

	return &invoiceFixture{
		svc:      NewInvoiceService(invoices, shops, products),
		invoices: invoices,
		shops:    shops,
		products: products,
		shop:     shop,
		prodA:    mk("Rice 5kg", "100.00"),
		prodB:    mk("Lentils 1kg", "50.00"),
		prodC:    mk("Oil 2L", "100.00"),
	}
}

// createStandard builds the three-line reference invoice:
// 2×100 + 2×50 + 1×100 = 400.00 subtotal, 5% kazi discount = 20.00, 380.00 final.
func (f *invoiceFixture) createStandard(t *testing.T) *dto.InvoiceResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		ShopID:       f.shop.ID.String(),
		DiscountType: string(model.DiscountKazi),
		Items: []dto.InvoiceLineRequest{
			{ProductID: f.prodA.ID.String(), Quantity: 2},
			{ProductID: f.prodB.ID.String(), Quantity: 2},
			{ProductID: f.prodC.ID.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)
	return resp
}

func assertTotals(t *testing.T, resp *dto.InvoiceResponse, subtotal, discount, final string) {
	t.Helper()
	assert.Equal(t, subtotal, resp.Subtotal.StringFixed(2))
	assert.Equal(t, discount, resp.DiscountAmount.StringFixed(2))
	assert.Equal(t, final, resp.FinalTotal.StringFixed(2))
}

// ── Creation ─────────────────────────────────────────────────────────────────

func TestCreateInvoicePricesLines(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)

	assertTotals(t, resp, "400.00", "20.00", "380.00")
	assert.Equal(t, "5.00", resp.DiscountPercent.StringFixed(2))
	assert.False(t, resp.IsDelivered)
	require.Len(t, resp.Items, 3)

	// line A: 2 × 100.00 at 5%
	a := resp.Items[0]
	assert.Equal(t, "100.00", a.TPPrice.StringFixed(2))
	assert.Equal(t, "200.00", a.TotalPrice.StringFixed(2))
	assert.Equal(t, "10.00", a.DiscountAmount.StringFixed(2))
	assert.Equal(t, "190.00", a.FinalPrice.StringFixed(2))

	// Σ final_price == final_total
	sum := money.Zero()
	for _, it := range resp.Items {
		sum = sum.Add(it.FinalPrice)
	}
	assert.True(t, sum.Equal(resp.FinalTotal))
}

func TestCreateInvoiceNumberSequence(t *testing.T) {
	f := newInvoiceFixture(t)
	today := time.Now().UTC().Format("20060102")

	first := f.createStandard(t)
	second := f.createStandard(t)

	assert.Equal(t, "INV-"+today+"-001", first.InvoiceNumber)
	assert.Equal(t, "INV-"+today+"-002", second.InvoiceNumber)
}

func TestCreateInvoiceNumberSequencePastThreeDigits(t *testing.T) {
	f := newInvoiceFixture(t)
	today := time.Now().UTC().Format("20060102")

	seed := &model.Invoice{
		InvoiceNumber: "INV-" + today + "-999",
		ShopID:        f.shop.ID,
		DiscountType:  model.DiscountKazi,
	}
	require.NoError(t, f.invoices.Create(context.Background(), nil, seed))

	first := f.createStandard(t)
	second := f.createStandard(t)

	assert.Equal(t, "INV-"+today+"-1000", first.InvoiceNumber)
	assert.Equal(t, "INV-"+today+"-1001", second.InvoiceNumber)
}

func TestCreateInvoiceHarvestDiscount(t *testing.T) {
	f := newInvoiceFixture(t)
	resp, err := f.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		ShopID:       f.shop.ID.String(),
		DiscountType: string(model.DiscountHarvest),
		Items:        []dto.InvoiceLineRequest{{ProductID: f.prodA.ID.String(), Quantity: 2}},
	})
	require.NoError(t, err)
	assertTotals(t, resp, "200.00", "20.00", "180.00")
	assert.Equal(t, "10.00", resp.DiscountPercent.StringFixed(2))
}

func TestCreateInvoiceRejectsUnknownDiscountType(t *testing.T) {
	f := newInvoiceFixture(t)
	_, err := f.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		ShopID:       f.shop.ID.String(),
		DiscountType: "loyalty",
		Items:        []dto.InvoiceLineRequest{{ProductID: f.prodA.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidDiscountType)
}

func TestCreateInvoiceUnknownShop(t *testing.T) {
	f := newInvoiceFixture(t)
	_, err := f.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		ShopID:       uuid.NewString(),
		DiscountType: string(model.DiscountKazi),
		Items:        []dto.InvoiceLineRequest{{ProductID: f.prodA.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCreateInvoiceUnknownProductCreatesNothing(t *testing.T) {
	f := newInvoiceFixture(t)
	_, err := f.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		ShopID:       f.shop.ID.String(),
		DiscountType: string(model.DiscountKazi),
		Items: []dto.InvoiceLineRequest{
			{ProductID: f.prodA.ID.String(), Quantity: 1},
			{ProductID: uuid.NewString(), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Empty(t, f.invoices.invoices)
}

func TestCreateInvoiceDoesNotTouchStock(t *testing.T) {
	f := newInvoiceFixture(t)
	f.prodA.Stock = 10
	f.createStandard(t)
	assert.Equal(t, 10, f.prodA.Stock)
}

// ── Mutation ─────────────────────────────────────────────────────────────────

func TestUpdateItemQuantityRecomputesTotals(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)

	// bump line B from 2 to 4: 50×4 = 200, subtotal 500, 5% = 25, final 475
	updated, err := f.svc.UpdateItemQuantity(context.Background(),
		uuid.MustParse(resp.Items[1].ID), dto.UpdateOrderItemRequest{Quantity: 4})
	require.NoError(t, err)
	assertTotals(t, updated, "500.00", "25.00", "475.00")
}

func TestUpdateItemUsesFrozenDiscountPercent(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)

	// Shop renegotiates its discount after the invoice exists; the invoice's
	// frozen 5% must keep applying to mutations.
	f.shop.DiscountKazi = money.RequirePercentFromString("50")

	updated, err := f.svc.UpdateItemQuantity(context.Background(),
		uuid.MustParse(resp.Items[0].ID), dto.UpdateOrderItemRequest{Quantity: 3})
	require.NoError(t, err)
	// line A: 3×100 = 300 at 5% → 15; invoice: 500 / 25 / 475
	assert.Equal(t, "15.00", updated.Items[0].DiscountAmount.StringFixed(2))
	assertTotals(t, updated, "500.00", "25.00", "475.00")
}

func TestRemoveItemRecomputesFromRemaining(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)

	// drop line C (1×100): 300.00 / 15.00 / 285.00
	updated, err := f.svc.RemoveItem(context.Background(), uuid.MustParse(resp.Items[2].ID))
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assertTotals(t, updated, "300.00", "15.00", "285.00")
}

func TestRemoveLastItemLeavesEmptyInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	resp, err := f.svc.Create(context.Background(), dto.CreateInvoiceRequest{
		ShopID:       f.shop.ID.String(),
		DiscountType: string(model.DiscountKazi),
		Items:        []dto.InvoiceLineRequest{{ProductID: f.prodA.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := f.svc.RemoveItem(context.Background(), uuid.MustParse(resp.Items[0].ID))
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
	assertTotals(t, updated, "0.00", "0.00", "0.00")

	// still retrievable
	_, err = f.svc.GetByID(context.Background(), uuid.MustParse(resp.ID))
	assert.NoError(t, err)
}

func TestDeliveredInvoiceRejectsMutation(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)
	_, err := f.svc.MarkDelivered(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)

	_, err = f.svc.UpdateItemQuantity(context.Background(),
		uuid.MustParse(resp.Items[0].ID), dto.UpdateOrderItemRequest{Quantity: 9})
	assert.ErrorIs(t, err, apierror.ErrConflict)

	_, err = f.svc.RemoveItem(context.Background(), uuid.MustParse(resp.Items[0].ID))
	assert.ErrorIs(t, err, apierror.ErrConflict)

	// totals unchanged
	got, err := f.svc.GetByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assertTotals(t, got, "400.00", "20.00", "380.00")
}

// ── Delivery and deletion ────────────────────────────────────────────────────

func TestMarkDeliveredIsIdempotent(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)
	id := uuid.MustParse(resp.ID)

	first, err := f.svc.MarkDelivered(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, first.IsDelivered)

	second, err := f.svc.MarkDelivered(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, second.IsDelivered)
}

func TestDeleteDeliveredRequiresDeliveredState(t *testing.T) {
	f := newInvoiceFixture(t)
	resp := f.createStandard(t)
	id := uuid.MustParse(resp.ID)

	err := f.svc.DeleteDelivered(context.Background(), id)
	assert.ErrorIs(t, err, apierror.ErrValidation)

	_, err = f.svc.MarkDelivered(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteDelivered(context.Background(), id))
	_, err = f.svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestDeleteInvoiceDoesNotRestoreStock(t *testing.T) {
	f := newInvoiceFixture(t)
	f.prodA.Stock = 7
	resp := f.createStandard(t)

	require.NoError(t, f.svc.Delete(context.Background(), uuid.MustParse(resp.ID)))
	assert.Equal(t, 7, f.prodA.Stock)
}

// ── Discount resolution ──────────────────────────────────────────────────────

func TestResolveDiscount(t *testing.T) {
	shop := &model.Shop{
		DiscountKazi:    money.RequirePercentFromString("5"),
		DiscountHarvest: money.RequirePercentFromString("12.5"),
	}

	kazi, err := ResolveDiscount(shop, model.DiscountKazi)
	require.NoError(t, err)
	assert.True(t, kazi.Equal(shop.DiscountKazi))

	harvest, err := ResolveDiscount(shop, model.DiscountHarvest)
	require.NoError(t, err)
	assert.True(t, harvest.Equal(shop.DiscountHarvest))

	_, err = ResolveDiscount(shop, model.DiscountType("seasonal"))
	assert.True(t, errors.Is(err, apierror.ErrInvalidDiscountType))
}
