// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package game builds the supermarket text adventure as a program over the
// [code.hybscloud.com/free/adventure] effect alphabet.
//
// The goal is to buy a sausage roll with pickle for the player's partner.
// Nothing here performs I/O: [Game] returns a value that any interpreter
// can run.
package game

import (
	"code.hybscloud.com/free"
	"code.hybscloud.com/free/adventure"
	"code.hybscloud.com/kont"
)

type unit = struct{}

// Program is a program over the adventure effect alphabet.
type Program[A any] = free.Program[A]

// Position is the state carried from room to room.
type Position struct {
	Room      adventure.Location
	Inventory adventure.Inventory
}

// Game returns the whole adventure: the intro, the walk through the
// supermarket, and an ending depending on what the player bought.
func Game() Program[unit] {
	return free.Bind(intro(), func(accepted bool) Program[unit] {
		if !accepted {
			return free.Pure(unit{})
		}
		return free.Bind(Rooms(adventure.Refrigerators, adventure.Inventory{}), ending)
	})
}

func intro() Program[bool] {
	return adventure.ShowThen(adventure.Entrance,
		adventure.SayThen(adventure.Partner, "Would you be so kind as to quickly grab me a sausage roll from the supermarket? With pickle if possible?", adventure.Friendly,
			adventure.SayThen(adventure.Partner, "I'd meanwhile go over to the pharmacy, and buy some pills against headache.", adventure.Friendly,
				adventure.AskBind(func(c int) Program[bool] {
					if c == 0 {
						return adventure.SayThen(adventure.Partner, "Thanks! We'll meet here in a couple of minutes then.", adventure.Friendly,
							free.Pure(true))
					}
					return adventure.SayThen(adventure.Partner, "Well, I won't force you. But if I get hangry, it's going to be your problem.", adventure.Annoyed,
						free.Pure(false))
				}, "Say yes and enter the supermarket.", "Say no."))))
}

// Rooms walks from room to room, starting in room with inv, until the player
// leaves the supermarket through the checkout. Yields the final inventory.
func Rooms(room adventure.Location, inv adventure.Inventory) Program[adventure.Inventory] {
	return free.Loop(Position{Room: room, Inventory: inv}, func(p Position) Program[kont.Either[Position, adventure.Inventory]] {
		return free.Map(visit(p), func(next Position) kont.Either[Position, adventure.Inventory] {
			if next.Room == adventure.Entrance {
				return kont.Right[Position](next.Inventory)
			}
			return kont.Left[Position, adventure.Inventory](next)
		})
	})
}

// visit presents the room and runs its menu until the player moves on.
func visit(p Position) Program[Position] {
	var menu Program[Position]
	switch p.Room {
	case adventure.Refrigerators:
		menu = refrigerators(p.Inventory)
	case adventure.Shelves:
		menu = shelves(p.Inventory)
	case adventure.Deli:
		menu = deli(p.Inventory)
	case adventure.Checkout:
		menu = checkout(p.Inventory)
	default:
		return free.Pure(Position{Room: adventure.Entrance, Inventory: p.Inventory})
	}
	return adventure.ShowThen(p.Room, menu)
}

func moveTo(room adventure.Location, inv adventure.Inventory) Program[Position] {
	return free.Pure(Position{Room: room, Inventory: inv})
}

// withReturn appends the return option when inv holds an item from room.
func withReturn(inv adventure.Inventory, room adventure.Location, options ...string) []string {
	if inv.HasItemFrom(room) {
		return append(options, "Return an item")
	}
	return options
}

func refrigerators(inv adventure.Inventory) Program[Position] {
	options := withReturn(inv, adventure.Refrigerators,
		"Move on to the Shelves.", "Move to the deli counter.", "Check Inventory", "Take an item")
	return adventure.AskBind(func(c int) Program[Position] {
		switch c {
		case 0:
			return moveTo(adventure.Shelves, inv)
		case 1:
			return moveTo(adventure.Deli, inv)
		case 2:
			return free.Then(checkInventory(inv), refrigerators(inv))
		case 3:
			return free.Bind(takeItem(inv, adventure.Refrigerators.Items()), refrigerators)
		default:
			return free.Bind(returnItem(inv, adventure.Refrigerators), refrigerators)
		}
	}, options...)
}

func shelves(inv adventure.Inventory) Program[Position] {
	options := withReturn(inv, adventure.Shelves,
		"Move on to the Refrigerators.", "Move to the deli counter.", "Move to the checkout.", "Check Inventory", "Take an item")
	return adventure.AskBind(func(c int) Program[Position] {
		switch c {
		case 0:
			return moveTo(adventure.Refrigerators, inv)
		case 1:
			return moveTo(adventure.Deli, inv)
		case 2:
			return moveTo(adventure.Checkout, inv)
		case 3:
			return free.Then(checkInventory(inv), shelves(inv))
		case 4:
			return free.Bind(takeItem(inv, adventure.Shelves.Items()), shelves)
		default:
			return free.Bind(returnItem(inv, adventure.Shelves), shelves)
		}
	}, options...)
}

func deli(inv adventure.Inventory) Program[Position] {
	return adventure.AskBind(func(c int) Program[Position] {
		switch c {
		case 0:
			return moveTo(adventure.Refrigerators, inv)
		case 1:
			return moveTo(adventure.Shelves, inv)
		case 2:
			return free.Then(checkInventory(inv), deli(inv))
		default:
			return free.Bind(talkToDeliLady(inv), deli)
		}
	}, "Move on to refrigerators.", "Move on to shelves.", "Check Inventory", "Talk to the lady behind the counter")
}

func checkout(inv adventure.Inventory) Program[Position] {
	options := withReturn(inv, adventure.Checkout,
		"Move back to the shelves.", "Pay for your stuff and leave.", "Check Inventory", "Take an item")
	return adventure.AskBind(func(c int) Program[Position] {
		switch c {
		case 0:
			return moveTo(adventure.Shelves, inv)
		case 1:
			return free.Bind(tryPay(inv), func(paid kont.Either[adventure.Inventory, adventure.Inventory]) Program[Position] {
				if inv, ok := paid.GetRight(); ok {
					return adventure.TellThen("You leave the supermarket. Your partner is already waiting outside.",
						moveTo(adventure.Entrance, inv))
				}
				inv, _ := paid.GetLeft()
				return checkout(inv)
			})
		case 2:
			return free.Then(checkInventory(inv), checkout(inv))
		case 3:
			return free.Bind(takeItem(inv, adventure.Checkout.Items()), checkout)
		default:
			return free.Bind(returnItem(inv, adventure.Checkout), checkout)
		}
	}, options...)
}

// describe lists item descriptions followed by a cancel option.
func describe(items []adventure.Item) []string {
	options := make([]string, 0, len(items)+1)
	for _, i := range items {
		options = append(options, i.Description())
	}
	return append(options, "Cancel")
}

func takeItem(inv adventure.Inventory, stock []adventure.Item) Program[adventure.Inventory] {
	return adventure.TellThen("You look around and these items nearby catch your attention.",
		adventure.AskBind(func(c int) Program[adventure.Inventory] {
			if c >= len(stock) {
				return adventure.TellThen("You changed your mind, and didn't take an item.", free.Pure(inv))
			}
			if updated, ok := inv.TryAdd(stock[c]).GetRight(); ok {
				return adventure.TellThen("You take the item.", free.Pure(updated))
			}
			return adventure.TellThen("You try to pick up the item, but your hands are full.", free.Pure(inv))
		}, describe(stock)...))
}

func returnItem(inv adventure.Inventory, room adventure.Location) Program[adventure.Inventory] {
	carried := inv.ItemsFrom(room)
	return adventure.TellThen("You check which items you can return here. You find places where you can return the following:",
		adventure.AskBind(func(c int) Program[adventure.Inventory] {
			if c < len(carried) {
				if updated, ok := inv.TryRemove(carried[c]).GetRight(); ok {
					return adventure.TellThen("You put back the item.", free.Pure(updated))
				}
			}
			return adventure.TellThen("You decided to not return an item.", free.Pure(inv))
		}, describe(carried)...))
}

func checkInventory(inv adventure.Inventory) Program[unit] {
	lines := []string{"You look at the items you carry. You are holding:"}
	for _, i := range inv.Items {
		lines = append(lines, i.Description())
	}
	if inv.Len() < 2 {
		lines = append(lines, "You check your pocket to see how much money you have.", adventure.Money())
	} else {
		lines = append(lines, "You would like to check how much money you have on you, but you need both hands to carry all the stuff you gathered.")
	}
	return adventure.Narration(lines...)
}

// carriesDeliFood reports whether inv holds food handed out at the deli.
func carriesDeliFood(inv adventure.Inventory) bool {
	return inv.Contains(adventure.SausageRoll) || inv.Contains(adventure.FishSandwich)
}

func talkToDeliLady(inv adventure.Inventory) Program[adventure.Inventory] {
	return adventure.TellThen("You greet the lady at the deli counter.",
		adventure.SayThen(adventure.DeliLady, "Hi! How can I help you, dear?", adventure.Friendly,
			adventure.SayThen(adventure.DeliLady, "We have the most awesome fish sandwiches today. Would you like one?", adventure.Friendly,
				deliConversation(inv))))
}

const handsFull = "I would love to hand it to you, but your hands seem kinda full. Please come back later, when you can actually carry the food I sell."

func deliConversation(inv adventure.Inventory) Program[adventure.Inventory] {
	options := []string{"Yes, please!", "No, thanks. I'd rather buy a sausage roll with pickle.", "Nothing, thanks."}
	if carriesDeliFood(inv) {
		options = append(options, "Do you take stuff from the deli back?")
	}
	return adventure.AskBind(func(c int) Program[adventure.Inventory] {
		switch c {
		case 0:
			updated, ok := inv.TryAdd(adventure.FishSandwich).GetRight()
			if !ok {
				return adventure.SayThen(adventure.DeliLady, handsFull, adventure.Annoyed, free.Pure(inv))
			}
			return adventure.SayThen(adventure.DeliLady, "Here you go! Is there anything else I can help you with? Maybe another fish sandwich?", adventure.Happy,
				deliConversation(updated))
		case 1:
			updated, ok := inv.TryAdd(adventure.SausageRoll).GetRight()
			if !ok {
				return adventure.SayThen(adventure.DeliLady, handsFull, adventure.Annoyed, free.Pure(inv))
			}
			return adventure.SayThen(adventure.DeliLady, "I'm sorry, but I don't have any pickles here right now. But you can take a glass from the shelf over there.", adventure.Apologetic,
				adventure.SayThen(adventure.DeliLady, "I'll put in extra sausage to make up for it.", adventure.Apologetic,
					adventure.SayThen(adventure.DeliLady, "Here you go! Is there anything else I can help you with? Maybe a fish sandwich?", adventure.Happy,
						deliConversation(updated))))
		case 2:
			return adventure.SayThen(adventure.DeliLady, "So, you are just here to steal my time? I've got other customers to serve.", adventure.Annoyed,
				free.Pure(inv))
		default:
			return adventure.SayThen(adventure.DeliLady, "No, that would be gross. Would you buy a sandwich handed back by some other random customer?", adventure.Confused,
				free.Pure(inv))
		}
	}, options...)
}

// tryPay yields Right(inv) if the player paid and Left(inv) if the total
// exceeds the budget.
func tryPay(inv adventure.Inventory) Program[kont.Either[adventure.Inventory, adventure.Inventory]] {
	var outcome Program[bool]
	if inv.CanAfford() {
		outcome = adventure.TellThen("You hand the cashier the required amount of money.",
			adventure.SayThen(adventure.Cashier, "Thank you very much, have a nice day!", adventure.Friendly,
				free.Pure(true)))
	} else {
		outcome = adventure.TellThen("When you hear the total amount you need to pay, you blush.",
			adventure.SayThen(adventure.Cashier, "I know that face. You haven't got enough money on you, right?", adventure.Annoyed,
				adventure.SayThen(adventure.Cashier, "Please bring back some items to where you took them from, and come back when you can actually pay the stuff you want to buy.", adventure.Annoyed,
					free.Pure(false))))
	}
	settle := func(paid bool) kont.Either[adventure.Inventory, adventure.Inventory] {
		if paid {
			return kont.Right[adventure.Inventory](inv)
		}
		return kont.Left[adventure.Inventory, adventure.Inventory](inv)
	}
	total := "That would be " + adventure.FormatCents(inv.TotalPrice()) + ", please."
	return adventure.TellThen("You put your items onto the conveyor and wait until the cashier scans them.",
		adventure.SayThen(adventure.Cashier, total, adventure.Friendly,
			free.Apply(free.Pure(settle), outcome)))
}

func ending(inv adventure.Inventory) Program[unit] {
	if inv.Contains(adventure.SausageRoll) {
		if inv.Contains(adventure.Pickles) {
			return adventure.SayThen(adventure.Partner, "Wait, seriously? You bought a glass of pickles and a sausage roll without pickle?", adventure.Confused,
				adventure.TellThen("You explain that the deli counter had run out of pickles.",
					adventure.SayThen(adventure.Partner, "Well, that's a creative solution.", adventure.Amused,
						adventure.Say(adventure.Partner, "Thanks a lot, let's move on.", adventure.Happy))))
		}
		return adventure.SayThen(adventure.Partner, "Thanks for the sausage roll, but there are no pickles in it?", adventure.Annoyed,
			adventure.TellThen("You explain that the deli counter had run out of pickles.",
				adventure.Say(adventure.Partner, "Well, that can't be helped then. Thanks a lot, let's move on.", adventure.Happy)))
	}
	return adventure.SayThen(adventure.Partner, "What did you do in there? I asked you to bring me a sausage roll...", adventure.Annoyed,
		free.Then(
			free.When(inv.Len() > 0, adventure.Say(adventure.Partner, "Also, why did you buy all that other stuff?", adventure.Annoyed)),
			adventure.Say(adventure.Partner, "Well, let's move on, but don't complain if I get hangry on the way.", adventure.Annoyed)))
}
