// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adventure

import (
	"fmt"
	"slices"

	"code.hybscloud.com/kont"
)

// Speaker is a character who can say dialogue lines.
type Speaker uint8

const (
	Partner Speaker = iota
	DeliLady
	Cashier
)

// Description returns how the speaker is introduced in text.
func (s Speaker) Description() string {
	switch s {
	case Partner:
		return "Your partner"
	case DeliLady:
		return "The lady behind the deli counter"
	case Cashier:
		return "The cashier"
	}
	return "Someone"
}

// Mood is the facial expression accompanying a dialogue line.
type Mood uint8

const (
	Friendly Mood = iota
	Confused
	Happy
	Amused
	Annoyed
	Apologetic
)

// Description returns the expression as a noun phrase.
func (m Mood) Description() string {
	switch m {
	case Friendly:
		return "a friendly expression"
	case Confused:
		return "a confused expression"
	case Happy:
		return "a happy expression"
	case Amused:
		return "an amused expression"
	case Annoyed:
		return "an annoyed expression"
	case Apologetic:
		return "an apologetic expression"
	}
	return "a blank expression"
}

// Location is an area of the supermarket.
type Location uint8

const (
	Entrance Location = iota
	Deli
	Checkout
	Refrigerators
	Shelves
)

var locationNames = [...]string{
	Entrance:      "entrance",
	Deli:          "deli",
	Checkout:      "checkout",
	Refrigerators: "refrigerators",
	Shelves:       "shelves",
}

// String returns the short name of the location.
func (l Location) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return fmt.Sprintf("location(%d)", uint8(l))
}

// Description returns the text presented when the player enters l.
func (l Location) Description() string {
	switch l {
	case Entrance:
		return "You are at the entrance area of the super market. Behind you is the parking lot, in front the inviting automated doors of the entrance. Your partner is here with you."
	case Deli:
		return "This is the area with the deli counter. There is a lady wearing a hair protector and plastic gloves standing behind the presentation tray."
	case Checkout:
		return "You have reached the checkout area of the super market. Stands full of sweets and other stuff that might attract the attention of people waiting to pay dominate this area. There is an employee sitting at one of the counters."
	case Refrigerators:
		return "This is the area where fresh products are waiting to be picked up. Refrigerators with milk, cheese and similar stuff are lined along the wall."
	case Shelves:
		return "This is the main area of the super market. Here you find several shelves filled with more or less useful stuff, ranging from conserved vegetables to cleaning utensils."
	}
	return "You are nowhere in particular."
}

// Items returns the items the player can take from l.
// Deli items are handed out by the deli lady and cannot be taken or returned.
func (l Location) Items() []Item {
	switch l {
	case Checkout:
		return []Item{ChewingGum, Shots, Pulp}
	case Refrigerators:
		return []Item{Milk, Yoghurt, Cheese}
	case Shelves:
		return []Item{Pickles, CatFood, Beer, ToiletPaper}
	}
	return nil
}

// Item is something that can be carried and bought.
type Item uint8

const (
	// refrigerators
	Milk Item = iota
	Yoghurt
	Cheese
	// shelves
	Pickles
	CatFood
	Beer
	ToiletPaper
	// deli
	SausageRoll
	FishSandwich
	// checkout
	ChewingGum
	Shots
	Pulp
)

// Price returns the price of the item in euro cents.
func (i Item) Price() int {
	switch i {
	case SausageRoll, FishSandwich, Shots:
		return 300
	case Pickles, Pulp:
		return 250
	case Milk, Yoghurt, Beer:
		return 125
	case Cheese:
		return 750
	case CatFood:
		return 2500
	case ToiletPaper:
		return 500
	case ChewingGum:
		return 100
	}
	return 0
}

// Description returns the text used when listing the item.
func (i Item) Description() string {
	switch i {
	case SausageRoll:
		return "A sausage roll, costing €3.00."
	case Pickles:
		return "A glass of pickles, costing €2.50"
	case Milk:
		return "A bottle of milk, costing €1.25"
	case Yoghurt:
		return "A cup of yoghurt, costing €1.25"
	case Cheese:
		return "A block of expensive grey cheese, costing €7.50"
	case CatFood:
		return "A bag of cat food, costing €25.00"
	case Beer:
		return "A bottle of beer, for €1.25"
	case ToiletPaper:
		return "A package of toilet paper, costing €5.00"
	case FishSandwich:
		return "A fish sandwich, emitting a tasty smell, costing €3.00"
	case ChewingGum:
		return "A pack of chewing gum, costing €1.00"
	case Shots:
		return "A shot of a sad excuse for whisky, costing €3.00"
	case Pulp:
		return "A pulp novel called \"Aliens ate my trashbin\", which should not cost the €2.50 it does"
	}
	return "Something unidentifiable."
}

const (
	// MaxItems is the number of items the player can carry at once.
	MaxItems = 3
	// Budget is the money the player carries, in euro cents.
	Budget = 1000
)

// Inventory is the set of items the player carries.
//
// Inventory is a value threaded through programs. Every update returns a new
// inventory and leaves the receiver untouched, so branches of a program never
// observe each other's changes.
type Inventory struct {
	Items []Item
}

// Clone returns an inventory with its own copy of the item list.
func (inv Inventory) Clone() Inventory {
	return Inventory{Items: slices.Clone(inv.Items)}
}

// Len returns the number of carried items.
func (inv Inventory) Len() int { return len(inv.Items) }

// Contains reports whether the player carries item.
func (inv Inventory) Contains(item Item) bool {
	return slices.Contains(inv.Items, item)
}

// HasItemFrom reports whether the player carries an item taken from room.
func (inv Inventory) HasItemFrom(room Location) bool {
	stock := room.Items()
	return slices.ContainsFunc(inv.Items, func(i Item) bool {
		return slices.Contains(stock, i)
	})
}

// ItemsFrom returns the carried items that were taken from room.
func (inv Inventory) ItemsFrom(room Location) []Item {
	stock := room.Items()
	var out []Item
	for _, i := range inv.Items {
		if slices.Contains(stock, i) {
			out = append(out, i)
		}
	}
	return out
}

// TryAdd adds item if the player's hands are not full.
// Returns Right(updated) on success, or Left(inv) unchanged.
func (inv Inventory) TryAdd(item Item) kont.Either[Inventory, Inventory] {
	if len(inv.Items) >= MaxItems {
		return kont.Left[Inventory, Inventory](inv)
	}
	items := make([]Item, len(inv.Items), len(inv.Items)+1)
	copy(items, inv.Items)
	return kont.Right[Inventory](Inventory{Items: append(items, item)})
}

// TryRemove removes one instance of item.
// Returns Right(updated) on success, or Left(inv) unchanged if the player
// does not carry item.
func (inv Inventory) TryRemove(item Item) kont.Either[Inventory, Inventory] {
	idx := slices.Index(inv.Items, item)
	if idx < 0 {
		return kont.Left[Inventory, Inventory](inv)
	}
	return kont.Right[Inventory](Inventory{Items: slices.Delete(slices.Clone(inv.Items), idx, idx+1)})
}

// TotalPrice returns the summed price of all carried items in euro cents.
func (inv Inventory) TotalPrice() int {
	total := 0
	for _, i := range inv.Items {
		total += i.Price()
	}
	return total
}

// CanAfford reports whether the player's budget covers the total price.
func (inv Inventory) CanAfford() bool {
	return inv.TotalPrice() <= Budget
}

// Money returns the player's money as display text.
func Money() string {
	return FormatCents(Budget)
}

// FormatCents renders an amount in euro cents as "€E.CC".
func FormatCents(cents int) string {
	return fmt.Sprintf("€%d.%02d", cents/100, cents%100)
}
