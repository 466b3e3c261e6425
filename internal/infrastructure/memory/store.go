// Package memory implementa los repositorios del dominio sobre mapas en
// memoria, con un TxRunner que serializa transacciones y revierte por
// snapshot. Respaldo para pruebas y para correr la API sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Store contenedor de todo el estado en memoria. Sus métodos Stock(), Sales(),
// etc. devuelven vistas que implementan los puertos de repositorio.
type Store struct {
	mu sync.Mutex

	stockItems map[string]*entity.StockItem
	purchases  map[string]*entity.Purchase
	purchLines map[string][]*entity.PurchaseLine
	sales      map[string]*entity.Sale
	saleLines  map[string][]*entity.SaleLine
	plans      map[string]*entity.LayawayPlan
	planLines  map[string][]*entity.PlanLine
	payments   map[string][]*entity.PlanPayment

	customers      map[string]*entity.Customer
	users          map[string]*entity.User
	providers      map[string]*entity.Provider
	paymentMethods map[string]*entity.PaymentMethod
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		stockItems:     map[string]*entity.StockItem{},
		purchases:      map[string]*entity.Purchase{},
		purchLines:     map[string][]*entity.PurchaseLine{},
		sales:          map[string]*entity.Sale{},
		saleLines:      map[string][]*entity.SaleLine{},
		plans:          map[string]*entity.LayawayPlan{},
		planLines:      map[string][]*entity.PlanLine{},
		payments:       map[string][]*entity.PlanPayment{},
		customers:      map[string]*entity.Customer{},
		users:          map[string]*entity.User{},
		providers:      map[string]*entity.Provider{},
		paymentMethods: map[string]*entity.PaymentMethod{},
	}
}

// snapshot copia profunda del estado transaccional (stock, compras, ventas, planes).
type snapshot struct {
	stockItems map[string]*entity.StockItem
	purchases  map[string]*entity.Purchase
	purchLines map[string][]*entity.PurchaseLine
	sales      map[string]*entity.Sale
	saleLines  map[string][]*entity.SaleLine
	plans      map[string]*entity.LayawayPlan
	planLines  map[string][]*entity.PlanLine
	payments   map[string][]*entity.PlanPayment
}

func copyMap[T any](src map[string]*T) map[string]*T {
	dst := make(map[string]*T, len(src))
	for k, v := range src {
		cp := *v
		dst[k] = &cp
	}
	return dst
}

func copyLines[T any](src map[string][]*T) map[string][]*T {
	dst := make(map[string][]*T, len(src))
	for k, vs := range src {
		out := make([]*T, 0, len(vs))
		for _, v := range vs {
			cp := *v
			out = append(out, &cp)
		}
		dst[k] = out
	}
	return dst
}

func (s *Store) take() snapshot {
	return snapshot{
		stockItems: copyMap(s.stockItems),
		purchases:  copyMap(s.purchases),
		purchLines: copyLines(s.purchLines),
		sales:      copyMap(s.sales),
		saleLines:  copyLines(s.saleLines),
		plans:      copyMap(s.plans),
		planLines:  copyLines(s.planLines),
		payments:   copyLines(s.payments),
	}
}

func (s *Store) restore(sn snapshot) {
	s.stockItems = sn.stockItems
	s.purchases = sn.purchases
	s.purchLines = sn.purchLines
	s.sales = sn.sales
	s.saleLines = sn.saleLines
	s.plans = sn.plans
	s.planLines = sn.planLines
	s.payments = sn.payments
}

// runTx serializa la transacción con el mutex (equivalente en memoria del
// bloqueo de fila) y revierte al snapshot si fn falla.
func (s *Store) runTx(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn := s.take()
	if err := fn(); err != nil {
		s.restore(sn)
		return err
	}
	return nil
}

// RunPurchase implementa purchases.TxRunner.
func (s *Store) RunPurchase(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return s.runTx(func() error { return fn(s.stockView(), s.purchaseView()) })
}

// RunSale implementa sales.TxRunner.
func (s *Store) RunSale(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return s.runTx(func() error { return fn(s.stockView(), s.saleView()) })
}

// RunPlan implementa layaway.TxRunner.
func (s *Store) RunPlan(_ context.Context, fn func(
	stockRepo repository.StockItemRepository,
	planRepo repository.PlanRepository,
) error) error {
	return s.runTx(func() error { return fn(s.stockView(), s.planView()) })
}

// ── Vistas de repositorio ────────────────────────────────────────────────────

func (s *Store) Stock() repository.StockItemRepository         { return s.stockView() }
func (s *Store) Purchases() repository.PurchaseRepository      { return s.purchaseView() }
func (s *Store) Sales() repository.SaleRepository              { return s.saleView() }
func (s *Store) Plans() repository.PlanRepository              { return s.planView() }
func (s *Store) Customers() repository.CustomerRepository      { return &customerView{s} }
func (s *Store) Users() repository.UserRepository              { return &userView{s} }
func (s *Store) Providers() repository.ProviderRepository      { return &providerView{s} }
func (s *Store) PaymentMethods() repository.PaymentMethodRepository {
	return &paymentMethodView{s}
}

func (s *Store) stockView() *stockView       { return &stockView{s} }
func (s *Store) purchaseView() *purchaseView { return &purchaseView{s} }
func (s *Store) saleView() *saleView         { return &saleView{s} }
func (s *Store) planView() *planView         { return &planView{s} }

type stockView struct{ s *Store }

func keyEq(item *entity.StockItem, key entity.StockKey) bool {
	eq := func(a, b *string) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return *a == *b
	}
	return item.ProductID == key.ProductID && eq(item.ColorID, key.ColorID) && eq(item.SizeID, key.SizeID)
}

func (v *stockView) GetByID(id string) (*entity.StockItem, error) {
	if it, ok := v.s.stockItems[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (v *stockView) GetByIDForUpdate(id string) (*entity.StockItem, error) { return v.GetByID(id) }

func (v *stockView) GetByKey(key entity.StockKey) (*entity.StockItem, error) {
	for _, it := range v.s.stockItems {
		if keyEq(it, key) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (v *stockView) GetByKeyForUpdate(key entity.StockKey) (*entity.StockItem, error) {
	return v.GetByKey(key)
}

func (v *stockView) Create(item *entity.StockItem) error {
	if existing, _ := v.GetByKey(item.Key()); existing != nil {
		return domain.ErrConflict
	}
	cp := *item
	v.s.stockItems[item.ID] = &cp
	return nil
}

func (v *stockView) Update(item *entity.StockItem) error {
	if _, ok := v.s.stockItems[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	v.s.stockItems[item.ID] = &cp
	return nil
}

func (v *stockView) List(limit, offset int) ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(v.s.stockItems))
	for _, it := range v.s.stockItems {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}

type purchaseView struct{ s *Store }

func (v *purchaseView) Create(p *entity.Purchase) error {
	cp := *p
	v.s.purchases[p.ID] = &cp
	return nil
}

func (v *purchaseView) CreateLine(l *entity.PurchaseLine) error {
	cp := *l
	v.s.purchLines[l.PurchaseID] = append(v.s.purchLines[l.PurchaseID], &cp)
	return nil
}

func (v *purchaseView) GetByID(id string) (*entity.Purchase, error) {
	if p, ok := v.s.purchases[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (v *purchaseView) GetLines(purchaseID string) ([]*entity.PurchaseLine, error) {
	lines := v.s.purchLines[purchaseID]
	out := make([]*entity.PurchaseLine, 0, len(lines))
	for _, l := range lines {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (v *purchaseView) List(limit, offset int) ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0, len(v.s.purchases))
	for _, p := range v.s.purchases {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

type saleView struct{ s *Store }

func (v *saleView) Create(sale *entity.Sale) error {
	cp := *sale
	v.s.sales[sale.ID] = &cp
	return nil
}

func (v *saleView) CreateLine(l *entity.SaleLine) error {
	cp := *l
	v.s.saleLines[l.SaleID] = append(v.s.saleLines[l.SaleID], &cp)
	return nil
}

func (v *saleView) GetByID(id string) (*entity.Sale, error) {
	if sale, ok := v.s.sales[id]; ok {
		cp := *sale
		return &cp, nil
	}
	return nil, nil
}

func (v *saleView) GetByIDForUpdate(id string) (*entity.Sale, error) { return v.GetByID(id) }

func (v *saleView) GetLines(saleID string) ([]*entity.SaleLine, error) {
	lines := v.s.saleLines[saleID]
	out := make([]*entity.SaleLine, 0, len(lines))
	for _, l := range lines {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (v *saleView) Update(sale *entity.Sale) error {
	if _, ok := v.s.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sale
	v.s.sales[sale.ID] = &cp
	return nil
}

func (v *saleView) List(limit, offset int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(v.s.sales))
	for _, sale := range v.s.sales {
		cp := *sale
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

type planView struct{ s *Store }

func (v *planView) Create(p *entity.LayawayPlan) error {
	cp := *p
	v.s.plans[p.ID] = &cp
	return nil
}

func (v *planView) CreateLine(l *entity.PlanLine) error {
	cp := *l
	v.s.planLines[l.PlanID] = append(v.s.planLines[l.PlanID], &cp)
	return nil
}

func (v *planView) GetByID(id string) (*entity.LayawayPlan, error) {
	if p, ok := v.s.plans[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (v *planView) GetByIDForUpdate(id string) (*entity.LayawayPlan, error) { return v.GetByID(id) }

func (v *planView) GetLines(planID string) ([]*entity.PlanLine, error) {
	lines := v.s.planLines[planID]
	out := make([]*entity.PlanLine, 0, len(lines))
	for _, l := range lines {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (v *planView) Update(p *entity.LayawayPlan) error {
	if _, ok := v.s.plans[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	v.s.plans[p.ID] = &cp
	return nil
}

func (v *planView) DeletePayments(planID string) error {
	delete(v.s.payments, planID)
	return nil
}

func (v *planView) DeleteLines(planID string) error {
	delete(v.s.planLines, planID)
	return nil
}

func (v *planView) Delete(id string) error {
	if _, ok := v.s.plans[id]; !ok {
		return domain.ErrNotFound
	}
	delete(v.s.plans, id)
	return nil
}

func (v *planView) ListByStatus(status string, limit, offset int) ([]*entity.LayawayPlan, error) {
	var out []*entity.LayawayPlan
	for _, p := range v.s.plans {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

func (v *planView) ListOverdue(now time.Time, limit, offset int) ([]*entity.LayawayPlan, error) {
	var out []*entity.LayawayPlan
	for _, p := range v.s.plans {
		if p.Status == entity.PlanStatusActive && p.DueAt.Before(now) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return paginate(out, limit, offset), nil
}

func (v *planView) CreatePayment(p *entity.PlanPayment) error {
	cp := *p
	v.s.payments[p.PlanID] = append(v.s.payments[p.PlanID], &cp)
	return nil
}

func (v *planView) ListPayments(planID string) ([]*entity.PlanPayment, error) {
	pays := v.s.payments[planID]
	out := make([]*entity.PlanPayment, 0, len(pays))
	for _, p := range pays {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ── Catálogo ─────────────────────────────────────────────────────────────────

type customerView struct{ s *Store }

func (v *customerView) Create(c *entity.Customer) error {
	cp := *c
	v.s.customers[c.ID] = &cp
	return nil
}

func (v *customerView) GetByID(id string) (*entity.Customer, error) {
	if c, ok := v.s.customers[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (v *customerView) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(v.s.customers))
	for _, c := range v.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}

type userView struct{ s *Store }

func (v *userView) Create(u *entity.User) error {
	cp := *u
	v.s.users[u.ID] = &cp
	return nil
}

func (v *userView) GetByID(id string) (*entity.User, error) {
	if u, ok := v.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (v *userView) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(v.s.users))
	for _, u := range v.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type providerView struct{ s *Store }

func (v *providerView) Create(p *entity.Provider) error {
	cp := *p
	v.s.providers[p.ID] = &cp
	return nil
}

func (v *providerView) GetByID(id string) (*entity.Provider, error) {
	if p, ok := v.s.providers[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (v *providerView) List(limit, offset int) ([]*entity.Provider, error) {
	out := make([]*entity.Provider, 0, len(v.s.providers))
	for _, p := range v.s.providers {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), nil
}

type paymentMethodView struct{ s *Store }

func (v *paymentMethodView) Create(m *entity.PaymentMethod) error {
	cp := *m
	v.s.paymentMethods[m.ID] = &cp
	return nil
}

func (v *paymentMethodView) GetByID(id string) (*entity.PaymentMethod, error) {
	if m, ok := v.s.paymentMethods[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (v *paymentMethodView) List() ([]*entity.PaymentMethod, error) {
	out := make([]*entity.PaymentMethod, 0, len(v.s.paymentMethods))
	for _, m := range v.s.paymentMethods {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
