package order

import (
	"context"
	"errors"
	"testing"

	"craftlink-be/internal/events"
	"craftlink-be/internal/user"
	"craftlink-be/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) error {
	args := m.Called(ctx, orderID, driverID)
	return args.Error(0)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// --- Helpers ---

func ctxAs(id uuid.UUID, role string) context.Context {
	return utils.SetUserContext(context.Background(), id, "test@example.com", role)
}

func newTestService(repo Repository, dir Directory) Service {
	return NewService(repo, dir, events.NewNoopPublisher())
}

func ptr[T any](v T) *T { return &v }

// --- Tests ---

func TestService_CreateOrder(t *testing.T) {
	actorID := uuid.New()
	supplierID := uuid.New()
	productID := uuid.New()

	t.Run("CustomerMissingTotalPrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.CreateOrder(ctxAs(actorID, "customer"), CreateOrderInput{
			OrderType: TypeCustomer,
			UserID:    ptr(actorID),
			ProductID: productID,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("InventoryMissingSupplier", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.CreateOrder(ctxAs(actorID, "artisan"), CreateOrderInput{
			OrderType: TypeInventory,
			ProductID: productID,
			Quantity:  2,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("MissingProduct", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))

		_, err := svc.CreateOrder(ctxAs(actorID, "customer"), CreateOrderInput{
			OrderType:  TypeCustomer,
			UserID:     ptr(actorID),
			TotalPrice: ptr(100.0),
			Quantity:   1,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("NoActor", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))

		_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
			OrderType: TypeCustomer,
			ProductID: productID,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("CustomerSuccess", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo, new(MockDirectory))

		var created *Order
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*Order) }).
			Return(nil)
		mockRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(&Order{}, nil).Maybe()

		_, err := svc.CreateOrder(ctxAs(actorID, "customer"), CreateOrderInput{
			OrderType:  TypeCustomer,
			UserID:     ptr(actorID),
			ProductID:  productID,
			Quantity:   3,
			TotalPrice: ptr(250.0),
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, StatusPending, created.OrderStatus)
		assert.Equal(t, PaymentPending, created.PaymentStatus)
		assert.Equal(t, PayAfterDelivery, created.PaymentTiming)
		assert.Equal(t, 250.0, created.TotalPrice)
		assert.Equal(t, actorID, created.CreatedBy)
	})

	t.Run("InventoryDefaultsArtisanToActor", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo, new(MockDirectory))

		var created *Order
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*Order) }).
			Return(nil)
		mockRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(&Order{}, nil).Maybe()

		_, err := svc.CreateOrder(ctxAs(actorID, "artisan"), CreateOrderInput{
			OrderType:  TypeInventory,
			SupplierID: ptr(supplierID),
			ProductID:  productID,
			Quantity:   5,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		require.NotNil(t, created.ArtisanID)
		assert.Equal(t, actorID, *created.ArtisanID)
		assert.Equal(t, 0.0, created.TotalPrice)
	})

	t.Run("PrepaidWithCodeStartsPaid", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo, new(MockDirectory))

		var created *Order
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*Order) }).
			Return(nil)
		mockRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(&Order{}, nil).Maybe()

		_, err := svc.CreateOrder(ctxAs(actorID, "customer"), CreateOrderInput{
			OrderType:     TypeCustomer,
			UserID:        ptr(actorID),
			ProductID:     productID,
			Quantity:      1,
			TotalPrice:    ptr(80.0),
			PaymentTiming: PayBeforeDelivery,
			PaymentCode:   ptr("MPESA-123"),
		})
		require.NoError(t, err)
		assert.Equal(t, PaymentPaid, created.PaymentStatus)
	})
}

func TestService_TransitionStatus(t *testing.T) {
	artisanID := uuid.New()
	supplierID := uuid.New()

	newInventoryOrder := func(status OrderStatus) *Order {
		return &Order{
			ID:            uuid.New(),
			OrderType:     TypeInventory,
			ArtisanID:     ptr(artisanID),
			SupplierID:    ptr(supplierID),
			OrderStatus:   status,
			PaymentStatus: PaymentPending,
			PaymentTiming: PayAfterDelivery,
		}
	}

	t.Run("UnknownStatus", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))
		_, err := svc.TransitionStatus(ctxAs(artisanID, "artisan"), uuid.New(), "teleported")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, ErrOrderNotFound)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.TransitionStatus(ctxAs(artisanID, "artisan"), uuid.New(), StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("StrangerDenied", func(t *testing.T) {
		o := newInventoryOrder(StatusPending)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.TransitionStatus(ctxAs(uuid.New(), "customer"), o.ID, StatusShipped)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("SupplierCannotSelfConfirmReceipt", func(t *testing.T) {
		o := newInventoryOrder(StatusDelivered)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.TransitionStatus(ctxAs(supplierID, "supplier"), o.ID, StatusReceived)
		assert.ErrorIs(t, err, ErrForbidden)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("ReceivedRequiresDelivery", func(t *testing.T) {
		o := newInventoryOrder(StatusPending)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.TransitionStatus(ctxAs(artisanID, "artisan"), o.ID, StatusReceived)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("ArtisanConfirmsReceipt", func(t *testing.T) {
		o := newInventoryOrder(StatusDelivered)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.TransitionStatus(ctxAs(artisanID, "artisan"), o.ID, StatusReceived)
		require.NoError(t, err)
		assert.Equal(t, StatusReceived, got.OrderStatus)
		assert.NotNil(t, got.ReceivedAt)
		// Post-delivery payment flips to paid on receipt.
		assert.Equal(t, PaymentPaid, got.PaymentStatus)
	})

	t.Run("ReceiptStampSetOnce", func(t *testing.T) {
		o := newInventoryOrder(StatusDelivered)
		earlier := o.CreatedAt
		o.ReceivedAt = &earlier

		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.TransitionStatus(ctxAs(artisanID, "artisan"), o.ID, StatusReceived)
		require.NoError(t, err)
		assert.Equal(t, &earlier, got.ReceivedAt)
	})

	t.Run("AdminMayTransitionAnything", func(t *testing.T) {
		o := newInventoryOrder(StatusPending)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.TransitionStatus(ctxAs(uuid.New(), "admin"), o.ID, StatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, StatusProcessing, got.OrderStatus)
	})
}

func TestService_Finance(t *testing.T) {
	financeID := uuid.New()
	artisanID := uuid.New()

	newInventoryOrder := func() *Order {
		return &Order{
			ID:            uuid.New(),
			OrderType:     TypeInventory,
			ArtisanID:     ptr(artisanID),
			SupplierID:    ptr(uuid.New()),
			OrderStatus:   StatusReceived,
			PaymentStatus: PaymentPending,
		}
	}

	t.Run("NonFinanceDenied", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))
		_, err := svc.FinanceApprove(ctxAs(artisanID, "artisan"), uuid.New())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("CustomerOrderRejected", func(t *testing.T) {
		o := &Order{ID: uuid.New(), OrderType: TypeCustomer, UserID: ptr(uuid.New())}
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.FinanceApprove(ctxAs(financeID, "finance"), o.ID)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("ApproveStampsOrder", func(t *testing.T) {
		o := newInventoryOrder()
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.FinanceApprove(ctxAs(financeID, "finance"), o.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, got.OrderStatus)
		assert.Equal(t, PaymentApproved, got.PaymentStatus)
		assert.NotNil(t, got.ApprovedAt)
	})

	t.Run("RejectRecordsReason", func(t *testing.T) {
		o := newInventoryOrder()
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.FinanceReject(ctxAs(financeID, "finance"), o.ID, "budget exceeded")
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, got.OrderStatus)
		assert.Equal(t, PaymentRejected, got.PaymentStatus)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "budget exceeded", *got.Notes)
		assert.NotNil(t, got.RejectedAt)
	})

	t.Run("ProcessPaymentCompletesOrder", func(t *testing.T) {
		o := newInventoryOrder()
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.FinanceProcessPayment(ctxAs(financeID, "finance"), o.ID, 500, "bank transfer", "")
		require.NoError(t, err)
		assert.Equal(t, PaymentPaid, got.PaymentStatus)
		assert.Equal(t, StatusCompleted, got.OrderStatus)
		assert.Equal(t, 500.0, got.TotalPrice)
		assert.NotNil(t, got.CompletedAt)
	})
}

func TestService_UpdatePaymentStatus(t *testing.T) {
	actorID := uuid.New()

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))
		_, err := svc.UpdatePaymentStatus(ctxAs(actorID, "customer"), uuid.New(), "refunded")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		orderID := uuid.New()
		mockRepo := new(MockRepository)
		mockRepo.On("UpdatePaymentStatus", mock.Anything, orderID, PaymentPaid).Return(nil)
		mockRepo.On("GetByID", mock.Anything, orderID).
			Return(&Order{ID: orderID, PaymentStatus: PaymentPaid}, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.UpdatePaymentStatus(ctxAs(actorID, "customer"), orderID, PaymentPaid)
		require.NoError(t, err)
		assert.Equal(t, PaymentPaid, got.PaymentStatus)
	})
}

func TestService_AssignDriver(t *testing.T) {
	adminID := uuid.New()
	orderID := uuid.New()

	t.Run("UnknownDriver", func(t *testing.T) {
		driverID := uuid.New()
		mockDir := new(MockDirectory)
		mockDir.On("FindByID", mock.Anything, driverID).Return(nil, user.ErrUserNotFound)
		svc := newTestService(new(MockRepository), mockDir)

		_, err := svc.AssignDriver(ctxAs(adminID, "admin"), orderID, driverID)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("NotADriver", func(t *testing.T) {
		driverID := uuid.New()
		mockDir := new(MockDirectory)
		mockDir.On("FindByID", mock.Anything, driverID).
			Return(&user.User{ID: driverID, Role: user.RoleCustomer}, nil)
		svc := newTestService(new(MockRepository), mockDir)

		_, err := svc.AssignDriver(ctxAs(adminID, "admin"), orderID, driverID)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		driverID := uuid.New()
		mockDir := new(MockDirectory)
		mockDir.On("FindByID", mock.Anything, driverID).
			Return(&user.User{ID: driverID, Role: user.RoleDriver}, nil)
		mockRepo := new(MockRepository)
		mockRepo.On("AssignDriver", mock.Anything, orderID, driverID).Return(nil)
		mockRepo.On("GetByID", mock.Anything, orderID).
			Return(&Order{ID: orderID, DriverID: ptr(driverID)}, nil)
		svc := newTestService(mockRepo, mockDir)

		got, err := svc.AssignDriver(ctxAs(adminID, "admin"), orderID, driverID)
		require.NoError(t, err)
		require.NotNil(t, got.DriverID)
		assert.Equal(t, driverID, *got.DriverID)
	})
}

func TestService_SupplierFlow(t *testing.T) {
	supplierID := uuid.New()
	artisanID := uuid.New()

	newOrder := func(status OrderStatus) *Order {
		return &Order{
			ID:            uuid.New(),
			OrderType:     TypeInventory,
			SupplierID:    ptr(supplierID),
			ArtisanID:     ptr(artisanID),
			OrderStatus:   status,
			PaymentStatus: PaymentPending,
			PaymentTiming: PayAfterDelivery,
		}
	}

	t.Run("MarkDeliveredBySupplier", func(t *testing.T) {
		o := newOrder(StatusShipped)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.MarkDelivered(ctxAs(supplierID, "supplier"), o.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, got.OrderStatus)
		assert.NotNil(t, got.DeliveredAt)
	})

	t.Run("MarkDeliveredByStranger", func(t *testing.T) {
		o := newOrder(StatusShipped)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.MarkDelivered(ctxAs(uuid.New(), "customer"), o.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("SubmitPaymentBeforeDelivery", func(t *testing.T) {
		o := newOrder(StatusPending)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.SubmitSupplierPayment(ctxAs(supplierID, "supplier"), o.ID, 100, PaymentPending, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("SubmitPaymentZeroAmount", func(t *testing.T) {
		o := newOrder(StatusDelivered)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		_, err := svc.SubmitSupplierPayment(ctxAs(supplierID, "supplier"), o.ID, 0, PaymentPending, "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("SubmitPaymentSuccess", func(t *testing.T) {
		o := newOrder(StatusDelivered)
		mockRepo := new(MockRepository)
		mockRepo.On("GetByID", mock.Anything, o.ID).Return(o, nil)
		mockRepo.On("Update", mock.Anything, o).Return(nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		got, err := svc.SubmitSupplierPayment(ctxAs(supplierID, "supplier"), o.ID, 320, PaymentReceived, "cheque 42")
		require.NoError(t, err)
		assert.Equal(t, 320.0, got.TotalPrice)
		assert.Equal(t, PaymentReceived, got.PaymentStatus)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "cheque 42", *got.Notes)
	})
}

func TestService_Lists(t *testing.T) {
	userID := uuid.New()

	t.Run("UserCannotListOthersOrders", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))
		_, err := svc.ListUserOrders(ctxAs(userID, "customer"), uuid.New())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("UserListsOwnOrders", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("ListByUser", mock.Anything, userID).Return([]*Order{{ID: uuid.New()}}, nil)
		svc := newTestService(mockRepo, new(MockDirectory))

		orders, err := svc.ListUserOrders(ctxAs(userID, "customer"), userID)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("DriverOrdersRequireDriverRole", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockDirectory))
		_, err := svc.ListDriverOrders(ctxAs(userID, "customer"))
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

// fakeRepo keeps a single order in memory so a multi-step lifecycle can be
// exercised end to end.
type fakeRepo struct {
	MockRepository
	order *Order
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeRepo) Create(ctx context.Context, o *Order) error {
	f.order = o
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, o *Order) error {
	if f.order == nil || f.order.ID != o.ID {
		return ErrOrderNotFound
	}
	f.order = o
	return nil
}

func TestService_InventoryLifecycle(t *testing.T) {
	artisanID := uuid.New()
	supplierID := uuid.New()
	financeID := uuid.New()
	productID := uuid.New()

	repo := &fakeRepo{}
	svc := newTestService(repo, new(MockDirectory))

	o, err := svc.CreateOrder(ctxAs(artisanID, "artisan"), CreateOrderInput{
		OrderType:  TypeInventory,
		SupplierID: ptr(supplierID),
		ProductID:  productID,
		Quantity:   10,
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, o.OrderStatus)

	o, err = svc.MarkDelivered(ctxAs(supplierID, "supplier"), o.ID)
	require.NoError(t, err)
	require.Equal(t, StatusDelivered, o.OrderStatus)
	require.NotNil(t, o.DeliveredAt)

	o, err = svc.TransitionStatus(ctxAs(artisanID, "artisan"), o.ID, StatusReceived)
	require.NoError(t, err)
	require.Equal(t, StatusReceived, o.OrderStatus)
	require.NotNil(t, o.ReceivedAt)
	require.Equal(t, PaymentPaid, o.PaymentStatus)

	o, err = svc.FinanceProcessPayment(ctxAs(financeID, "finance"), o.ID, 500, "", "")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, o.PaymentStatus)
	assert.Equal(t, StatusCompleted, o.OrderStatus)
	assert.Equal(t, 500.0, o.TotalPrice)
	assert.NotNil(t, o.CompletedAt)
}

func TestService_GetOrderPassthrough(t *testing.T) {
	orderID := uuid.New()
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, orderID).Return(nil, errors.New("db down"))
	svc := newTestService(mockRepo, new(MockDirectory))

	_, err := svc.GetOrder(context.Background(), orderID)
	assert.Error(t, err)
}
