package domain

import "time"

// Order statuses. PENDING orders advance only through the payment callback
// or an admin action.
const (
	OrderStatusPending  string = "PENDING"
	OrderStatusPaid     string = "PAID"
	OrderStatusShipped  string = "SHIPPED"
	OrderStatusCanceled string = "CANCELED"
	OrderStatusRefunded string = "REFUNDED"
)

// Seller ledger transaction types.
const (
	TransactionTypeSale string = "SALE"
	TransactionTypeRent string = "RENT"
)

// Entrepreneur verification statuses.
const (
	EntrepreneurStatusPending  string = "PENDING"
	EntrepreneurStatusApproved string = "APPROVED"
	EntrepreneurStatusRejected string = "REJECTED"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Verified     bool      `db:"verified"`
	Blocked      bool      `db:"blocked"`
	CreatedAt    time.Time `db:"created_at"`
}

type Verification struct {
	ID                 int    `db:"id"`
	UserID             int    `db:"user_id"`
	EntrepreneurStatus string `db:"entrepreneur_status"`
}

type Product struct {
	ID                int        `db:"id"`
	UserID            int        `db:"user_id"`
	Title             string     `db:"title"`
	Price             float64    `db:"price"`
	IsRental          bool       `db:"is_rental"`
	Status            string     `db:"status"`
	Discount          *float64   `db:"discount"`
	DiscountDays      *int       `db:"discount_days"`
	DiscountStartDate *time.Time `db:"discount_start_date"`
	CreatedAt         time.Time  `db:"created_at"`
}

type RentalPriceTier struct {
	ID          int     `db:"id"`
	ProductID   int     `db:"product_id"`
	MinDays     int     `db:"min_days"`
	PricePerDay float64 `db:"price_per_day"`
}

type Order struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	PaymentID string    `db:"payment_id"`
	Status    string    `db:"status"`
	Total     float64   `db:"total"`
	CreatedAt time.Time `db:"created_at"`
}

// OrderItem keeps a nullable ProductID: sold products are detached from
// items on removal so the rows survive the product.
type OrderItem struct {
	ID              int        `db:"id"`
	OrderID         int        `db:"order_id"`
	ProductID       *int       `db:"product_id"`
	IsRental        bool       `db:"is_rental"`
	Price           float64    `db:"price"`
	Quantity        int        `db:"quantity"`
	RentalStartDate *time.Time `db:"rental_start_date"`
	RentalEndDate   *time.Time `db:"rental_end_date"`
}

type CartItem struct {
	ID        int `db:"id"`
	UserID    int `db:"user_id"`
	ProductID int `db:"product_id"`
	Quantity  int `db:"quantity"`
}

// Transaction is a seller ledger entry. At most one row exists per
// (OrderID, UserID, Type) triple.
type Transaction struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	Total     float64   `db:"total"`
	CreatedAt time.Time `db:"created_at"`
}

// SettlementItem is the joined order-item/product snapshot settlement
// aggregates over. SellerID is nil when the product has been deleted and
// the item detached.
type SettlementItem struct {
	ProductID *int
	SellerID  *int
	IsRental  bool
	Price     float64
	Quantity  int
}
