package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/testdb"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, role domain.UserRole) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:    uuid.New().String(),
		Email: uuid.New().String() + "@example.com",
		Name:  "Анна",
		Role:  role,
	}
	if err := NewDefaultUserRepository(db).CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func newOrder(userID string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		ServiceName:   "Бухгалтерия",
		Status:        status,
		Priority:      domain.PriorityNormal,
		MonthlyAmount: decimal.NewNullDecimal(decimal.NewFromInt(15000)),
		Currency:      domain.DefaultCurrency,
		Source:        domain.SourceManual,
	}
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := NewDefaultOrderRepository(db)
	user := seedUser(t, db, domain.RoleUser)

	order := newOrder(user.ID, domain.StatusPending)
	if err := repo.CreateOrder(ctx, order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	completedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if err := repo.UpdateOrderStatus(ctx, order.ID, domain.StatusCompleted, &completedAt); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := repo.UpdateOrderStatus(ctx, order.ID, domain.StatusInProgress, nil); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	got, err := repo.GetOrderByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Fatalf("expected completed_at to be kept, got %v", got.CompletedAt)
	}
	if !got.MonthlyAmount.Valid || !got.MonthlyAmount.Decimal.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("expected monthly amount 15000, got %v", got.MonthlyAmount)
	}

	err = repo.UpdateOrderStatus(ctx, uuid.New().String(), domain.StatusCompleted, nil)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListOrders(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := NewDefaultOrderRepository(db)
	owner := seedUser(t, db, domain.RoleUser)
	stranger := seedUser(t, db, domain.RoleUser)

	for i, status := range []domain.OrderStatus{domain.StatusPending, domain.StatusPending, domain.StatusCompleted} {
		o := newOrder(owner.ID, status)
		o.CreatedAt = time.Date(2026, 3, 1+i, 9, 0, 0, 0, time.UTC)
		if err := repo.CreateOrder(ctx, o); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}
	if err := repo.CreateOrder(ctx, newOrder(stranger.ID, domain.StatusPending)); err != nil {
		t.Fatalf("create order: %v", err)
	}

	t.Run("scoped to owner", func(t *testing.T) {
		orders, total, err := repo.ListOrders(ctx, domain.OrderFilter{UserID: owner.ID, Limit: 50})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 3 || len(orders) != 3 {
			t.Fatalf("expected 3 orders, got total=%d len=%d", total, len(orders))
		}
		if !orders[0].CreatedAt.After(orders[2].CreatedAt) {
			t.Fatalf("expected newest first")
		}
	})

	t.Run("status filter and paging", func(t *testing.T) {
		pending := domain.StatusPending
		orders, total, err := repo.ListOrders(ctx, domain.OrderFilter{UserID: owner.ID, Status: &pending, Limit: 1, Offset: 1})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 2 {
			t.Fatalf("expected total 2, got %d", total)
		}
		if len(orders) != 1 || orders[0].Status != domain.StatusPending {
			t.Fatalf("expected one pending order on the second page")
		}
	})
}

func TestOrderRepository_GetOrderWithDetails(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := NewDefaultOrderRepository(db)
	history := NewDefaultOrderHistoryRepository(db)
	user := seedUser(t, db, domain.RoleUser)

	order := newOrder(user.ID, domain.StatusPending)
	if err := repo.CreateOrder(ctx, order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, status := range []domain.OrderStatus{domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted} {
		err := history.AddHistory(ctx, &domain.OrderStatusHistory{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Status:    status,
			ChangedBy: domain.ChangedBySystem,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("add history: %v", err)
		}
	}
	if err := repo.SetCRMDeal(ctx, order.ID, 4242); err != nil {
		t.Fatalf("set crm deal: %v", err)
	}

	got, err := repo.GetOrderWithDetails(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User == nil || got.User.ID != user.ID {
		t.Fatalf("expected owner to be loaded")
	}
	if len(got.History) != 3 {
		t.Fatalf("expected 3 history rows, got %d", len(got.History))
	}
	if got.History[0].Status != domain.StatusPending || got.History[2].Status != domain.StatusCompleted {
		t.Fatalf("expected history in chronological order")
	}
	if got.CRMDealID == nil || *got.CRMDealID != 4242 {
		t.Fatalf("expected crm deal id 4242, got %v", got.CRMDealID)
	}

	if _, err := repo.GetOrderWithDetails(ctx, uuid.New().String()); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestTxManager_Rollback(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := NewDefaultOrderRepository(db)
	tx := NewTxManager(db)
	user := seedUser(t, db, domain.RoleUser)

	order := newOrder(user.ID, domain.StatusPending)
	boom := errors.New("boom")
	err := tx.Do(ctx, func(ctx context.Context) error {
		if err := repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		// вложенный вызов работает в той же транзакции
		return tx.Do(ctx, func(ctx context.Context) error {
			if _, err := repo.GetOrderByID(ctx, order.ID); err != nil {
				return err
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := repo.GetOrderByID(ctx, order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected rolled back order to be missing, got %v", err)
	}
}
