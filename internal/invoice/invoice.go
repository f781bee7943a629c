package invoice

import (
	"time"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

// Domain-specific failure codes, reported alongside the core ledger
// taxonomy.
const (
	ReasonVatMismatch   ledger.Reason = "vat_mismatch"
	ReasonRoleNotInForm ledger.Reason = "role_not_in_empty_form"
)

// Type classifies a sale line.
type Type string

const (
	TypeFuel      Type = "fuel"
	TypeLubricant Type = "lubricant"
)

func (t Type) Valid() bool {
	return t == TypeFuel || t == TypeLubricant
}

// vatTolerance is the acceptable rounding slack between
// vatable_sales + vat_amount and total_amount.
const vatTolerance = 0.01

// Item is one receipt line on a sales-invoice batch. Items are immutable
// once appended; the only mutations are removal and renumbering.
type Item struct {
	ID            string    `bson:"id" json:"id"`
	ItemNumber    string    `bson:"item_number" json:"item_number"`
	ReceiptNumber string    `bson:"receipt_number" json:"receipt_number"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	Type          Type      `bson:"type" json:"type"`
	VatableSales  float64   `bson:"vatable_sales" json:"vatable_sales"`
	VatAmount     float64   `bson:"vat_amount" json:"vat_amount"`
	TotalAmount   float64   `bson:"total_amount" json:"total_amount"`
	Created       time.Time `bson:"created,omitempty" json:"created"`
	Updated       time.Time `bson:"updated,omitempty" json:"updated"`
}

func (it *Item) EntryID() string      { return it.ID }
func (it *Item) Number() string       { return it.ItemNumber }
func (it *Item) SetNumber(n string)   { it.ItemNumber = n }
func (it *Item) Key() string          { return it.ReceiptNumber }
func (it *Item) CreatedAt() time.Time { return it.Created }

func (it *Item) Stamp(id string, now time.Time) {
	it.ID = id
	it.Created = now
	it.Updated = now
}

// Employee is a staffing slot on the open form (cashier, attendant). Slots
// are created with the form; only their number and name are patched.
type Employee struct {
	Role           string `bson:"role" json:"role"`
	EmployeeNumber string `bson:"employee_number" json:"employee_number"`
	Name           string `bson:"name" json:"name"`
}
