package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-stitchmate/internal/config"
	"github.com/denmor86/ya-stitchmate/internal/logger"
	"github.com/denmor86/ya-stitchmate/internal/models"
	"github.com/denmor86/ya-stitchmate/internal/storage"
	"github.com/denmor86/ya-stitchmate/internal/storage/mocks"
	"github.com/denmor86/ya-stitchmate/internal/validators"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)
}

func seedOrders(t *testing.T, mockStorage *mocks.MockIStorage, orders []models.Order) *Orders {
	t.Helper()
	data, err := json.Marshal(orders)
	if err != nil {
		t.Fatalf("failed to encode seed: %v", err)
	}
	mockStorage.EXPECT().Read(gomock.Any(), storage.OrdersKey).Return(data, nil)
	s := NewOrders(mockStorage)
	s.Now = fixedNow
	s.Load(context.Background())
	return s
}

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: "o_2", Name: "Ravi", Phone: "9145550001", Type: models.GarmentShirt, Num: 1,
			Total: decimal.NewFromInt(800), Advance: decimal.NewFromInt(300), Remaining: decimal.NewFromInt(500), Date: "2026-10-02"},
		{ID: "o_1", Name: "Meena", Phone: "9000000000", Type: models.GarmentBlouse, Num: 2,
			Total: decimal.NewFromInt(500), Advance: decimal.NewFromInt(200), Remaining: decimal.NewFromInt(300), Date: "2026-10-01"},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		TestName      string
		Draft         models.OrderDraft
		SetupMocks    func(persisted *[]models.Order)
		ExpectedError error
		ExpectedLen   int
	}{
		{
			TestName: "Error. Empty name #1",
			Draft:    models.OrderDraft{Name: "  ", Total: "500"},
			SetupMocks: func(persisted *[]models.Order) {
			},
			ExpectedError: &validators.ValidationError{Field: "name", Message: "please enter recipient name"},
			ExpectedLen:   2,
		},
		{
			TestName: "Error. Persist failure #2",
			Draft:    models.OrderDraft{Name: "Asha", Total: "500"},
			SetupMocks: func(persisted *[]models.Order) {
				mockStorage.EXPECT().Write(gomock.Any(), storage.OrdersKey, gomock.Any()).Return(errors.New("disk full"))
			},
			ExpectedError: errors.New("failed to persist stitchmate_orders_v2: disk full"),
			ExpectedLen:   2,
		},
		{
			TestName: "Success. Order created #3",
			Draft:    models.OrderDraft{Name: " Asha ", Total: "500", Advance: "200", Num: "x", Type: "Blouse"},
			SetupMocks: func(persisted *[]models.Order) {
				mockStorage.EXPECT().Write(gomock.Any(), storage.OrdersKey, gomock.Any()).DoAndReturn(
					func(ctx context.Context, key string, data []byte) error {
						return json.Unmarshal(data, persisted)
					})
			},
			ExpectedError: nil,
			ExpectedLen:   3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			orders := seedOrders(t, mockStorage, sampleOrders())
			var persisted []models.Order
			tc.SetupMocks(&persisted)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := orders.Create(ctx, tc.Draft)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}

			all := orders.All()
			if len(all) != tc.ExpectedLen {
				t.Fatalf("Expected %d orders, got %d", tc.ExpectedLen, len(all))
			}
			if err != nil {
				if diff := cmp.Diff(sampleOrders(), all); diff != "" {
					t.Errorf("collection changed on failure:\n %s", diff)
				}
				return
			}
			if diff := cmp.Diff(order, all[0]); diff != "" {
				t.Errorf("new order is not first:\n %s", diff)
			}
			if len(persisted) != tc.ExpectedLen {
				t.Errorf("Expected %d persisted orders, got %d", tc.ExpectedLen, len(persisted))
			}
			if order.Name != "Asha" || order.Num != 1 || order.Date != "2026-10-19" {
				t.Errorf("unexpected normalized fields: %+v", order)
			}
			if !order.Remaining.Equal(decimal.NewFromInt(300)) {
				t.Errorf("Expected remaining 300, got %s", order.Remaining)
			}
			if order.ID == "" || !order.CreatedAt.Equal(fixedNow()) {
				t.Errorf("Expected id and createdAt to be assigned, got %q %v", order.ID, order.CreatedAt)
			}
			expectedSizes := map[string]string{"Bust (cm)": "", "Waist (cm)": "", "Shoulder (cm)": "", "Blouse length (cm)": ""}
			if diff := cmp.Diff(expectedSizes, order.Sizes); diff != "" {
				t.Errorf("sizes mismatch:\n %s", diff)
			}
		})
	}
}

func TestOrderService_CreateUniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	mockStorage.EXPECT().Write(gomock.Any(), storage.OrdersKey, gomock.Any()).Return(nil).Times(20)

	orders := NewOrders(mockStorage)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		order, err := orders.Create(context.Background(), models.OrderDraft{Name: "Asha"})
		if err != nil {
			t.Fatalf("Expected no error, got '%v'", err)
		}
		if seen[order.ID] {
			t.Fatalf("duplicate id %s", order.ID)
		}
		seen[order.ID] = true
	}
}

func TestOrderService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	testCases := []struct {
		TestName      string
		ID            string
		SetupMocks    func()
		ExpectedError error
		ExpectedIDs   []string
	}{
		{
			TestName:      "Success. Unknown id is a no-op #1",
			ID:            "o_404",
			SetupMocks:    func() {},
			ExpectedError: nil,
			ExpectedIDs:   []string{"o_2", "o_1"},
		},
		{
			TestName: "Error. Persist failure keeps order #2",
			ID:       "o_1",
			SetupMocks: func() {
				mockStorage.EXPECT().Write(gomock.Any(), storage.OrdersKey, gomock.Any()).Return(errors.New("disk full"))
			},
			ExpectedError: errors.New("failed to persist stitchmate_orders_v2: disk full"),
			ExpectedIDs:   []string{"o_2", "o_1"},
		},
		{
			TestName: "Success. Order deleted #3",
			ID:       "o_2",
			SetupMocks: func() {
				mockStorage.EXPECT().Write(gomock.Any(), storage.OrdersKey, gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
			ExpectedIDs:   []string{"o_1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			orders := seedOrders(t, mockStorage, sampleOrders())
			tc.SetupMocks()

			err := orders.Delete(context.Background(), tc.ID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}

			var ids []string
			for _, o := range orders.All() {
				ids = append(ids, o.ID)
			}
			if diff := cmp.Diff(tc.ExpectedIDs, ids); diff != "" {
				t.Errorf("ids mismatch:\n %s", diff)
			}
		})
	}
}

func TestOrderService_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	t.Run("Success. Only target order changes #1", func(t *testing.T) {
		orders := seedOrders(t, mockStorage, sampleOrders())
		mockStorage.EXPECT().Write(gomock.Any(), storage.OrdersKey, gomock.Any()).Return(nil)

		if err := orders.MarkPaid(context.Background(), "o_1"); err != nil {
			t.Fatalf("Expected no error, got '%v'", err)
		}

		expected := sampleOrders()
		expected[1].Advance = expected[1].Total
		expected[1].Remaining = decimal.Zero
		if diff := cmp.Diff(expected, orders.All()); diff != "" {
			t.Errorf("orders mismatch:\n %s", diff)
		}
	})

	t.Run("Success. Unknown id is a no-op #2", func(t *testing.T) {
		orders := seedOrders(t, mockStorage, sampleOrders())

		if err := orders.MarkPaid(context.Background(), "o_404"); err != nil {
			t.Fatalf("Expected no error, got '%v'", err)
		}
		if diff := cmp.Diff(sampleOrders(), orders.All()); diff != "" {
			t.Errorf("orders mismatch:\n %s", diff)
		}
	})
}

func TestOrderService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	testCases := []struct {
		TestName    string
		SetupMocks  func()
		ExpectedLen int
	}{
		{
			TestName: "Success. Absent slot #1",
			SetupMocks: func() {
				mockStorage.EXPECT().Read(gomock.Any(), storage.OrdersKey).Return(nil, storage.ErrNotFound)
			},
			ExpectedLen: 0,
		},
		{
			TestName: "Success. Corrupt slot #2",
			SetupMocks: func() {
				mockStorage.EXPECT().Read(gomock.Any(), storage.OrdersKey).Return([]byte(`[{"id":`), nil)
			},
			ExpectedLen: 0,
		},
		{
			TestName: "Success. Unreadable slot #3",
			SetupMocks: func() {
				mockStorage.EXPECT().Read(gomock.Any(), storage.OrdersKey).Return(nil, errors.New("permission denied"))
			},
			ExpectedLen: 0,
		},
		{
			TestName: "Success. Stored orders #4",
			SetupMocks: func() {
				data, _ := json.Marshal(sampleOrders())
				mockStorage.EXPECT().Read(gomock.Any(), storage.OrdersKey).Return(data, nil)
			},
			ExpectedLen: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			orders := NewOrders(mockStorage)
			orders.Load(context.Background())
			if got := len(orders.All()); got != tc.ExpectedLen {
				t.Errorf("Expected %d orders, got %d", tc.ExpectedLen, got)
			}
		})
	}
}
