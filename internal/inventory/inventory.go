package inventory

import "time"

// Item is one counted product line on an inventory form. CurrentQuantity is
// derived: previous_quantity + addstock - sold, recomputed server-side on
// every quantity update.
type Item struct {
	ID               string    `bson:"id" json:"id"`
	ItemNumber       string    `bson:"item_number" json:"item_number"`
	Barcode          string    `bson:"barcode" json:"barcode"`
	Type             string    `bson:"type" json:"type"`
	Name             string    `bson:"name" json:"name"`
	Price            float64   `bson:"price" json:"price"`
	Unit             string    `bson:"unit" json:"unit"`
	PreviousQuantity float64   `bson:"previous_quantity" json:"previous_quantity"`
	AddStock         float64   `bson:"addstock" json:"addstock"`
	Sold             float64   `bson:"sold" json:"sold"`
	CurrentQuantity  float64   `bson:"current_quantity" json:"current_quantity"`
	Created          time.Time `bson:"created,omitempty" json:"created"`
	Updated          time.Time `bson:"updated,omitempty" json:"updated"`
}

func (it *Item) EntryID() string      { return it.ID }
func (it *Item) Number() string       { return it.ItemNumber }
func (it *Item) SetNumber(n string)   { it.ItemNumber = n }
func (it *Item) Key() string          { return it.Barcode }
func (it *Item) CreatedAt() time.Time { return it.Created }

func (it *Item) Stamp(id string, now time.Time) {
	it.ID = id
	it.Created = now
	it.Updated = now
}

// Balanced reports whether the derived quantity satisfies
// previous_quantity + addstock - sold == current_quantity within floating
// point tolerance.
func (it *Item) Balanced() bool {
	diff := it.PreviousQuantity + it.AddStock - it.Sold - it.CurrentQuantity
	return diff < balanceTolerance && diff > -balanceTolerance
}

const balanceTolerance = 1e-9
