package object

// DefaultCatalogue returns the built-in set of household schemas: the
// concrete vocabulary the placement engine distributes across a
// generated apartment. Grounded in the reference implementation's
// object catalogue, trimmed to a representative, well-distributed
// subset covering fixtures, containers, surfaces, and small pickables
// across every room name in the default pool.
func DefaultCatalogue() *Catalogue {
	return NewCatalogue(
		// Fixtures & large furniture — not pickable, placed on the
		// floor; several must stand against or near a wall.
		Schema{
			Name:        "TrashCan",
			Capacity:    20,
			Pickable:    false,
			Constraint:  InRoom(),
			Target:      InRoom(),
			Description: "A trash can.",
		},
		Schema{
			Name:        "Cupboard",
			Capacity:    20,
			Pickable:    false,
			Constraint:  AdjacentObstacle(),
			Target:      InRoom(),
			Description: "A kitchen cupboard.",
		},
		Schema{
			Name:        "KitchenCabinet",
			Capacity:    10,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Kitchen"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A kitchen cabinet.",
		},
		Schema{
			Name:        "Dishwasher",
			Capacity:    20,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Kitchen"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A built-in dishwasher.",
		},
		Schema{
			Name:        "Refrigerator",
			Capacity:    10,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Kitchen"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A refrigerator.",
		},
		Schema{
			Name:        "FruitBowl",
			Capacity:    10,
			Pickable:    false,
			Constraint:  InRoomNamed("Kitchen", "Dining Room", "Living Room"),
			Target:      InRoom(),
			Description: "A bowl for holding fruit.",
		},
		Schema{
			Name:        "Drawer",
			Capacity:    15,
			Pickable:    false,
			Constraint:  InRoomNamed("Bedroom", "Office", "Study"),
			Target:      InRoom(),
			Description: "A sliding drawer unit.",
		},
		Schema{
			Name:        "StorageBox",
			Capacity:    30,
			Pickable:    false,
			Constraint:  Or(InRoomNamed("Hallway", "Living Room"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A box for loose items.",
		},
		Schema{
			Name:        "DiningTable",
			Capacity:    10,
			Pickable:    false,
			Constraint:  InRoomNamed("Dining Room", "Kitchen"),
			Target:      InRoom(),
			Description: "A table for eating meals.",
		},
		Schema{
			Name:        "Bookshelf",
			Capacity:    25,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Study", "Office", "Living Room"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A shelf for books.",
		},
		Schema{
			Name:        "Nightstand",
			Capacity:    8,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Bedroom"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A small bedside table.",
		},
		Schema{
			Name:        "Wardrobe",
			Capacity:    20,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Bedroom", "Guest Room"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A wardrobe for clothes.",
		},
		Schema{
			Name:        "BathroomCabinet",
			Capacity:    12,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Bathroom"), AdjacentObstacle()),
			Target:      InRoom(),
			Description: "A cabinet for toiletries.",
		},
		Schema{
			Name:        "CoatRack",
			Capacity:    8,
			Pickable:    false,
			Constraint:  And(InRoomNamed("Hallway"), CloseToObstacle()),
			Target:      InRoom(),
			Description: "A rack for hanging coats.",
		},
		Schema{
			Name:        "ToyChest",
			Capacity:    20,
			Pickable:    false,
			Constraint:  InRoomNamed("Playroom"),
			Target:      InRoom(),
			Description: "A chest for toys.",
		},
		Schema{
			Name:        "Rug",
			Capacity:    0,
			Pickable:    false,
			Constraint:  InRoom(),
			Target:      InRoom(),
			Description: "A decorative floor rug.",
		},

		// Small, pickable items — placed either on the floor or inside
		// a compatible container, and the player can carry them.
		Schema{
			Name:        "Book",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("Bookshelf", "Drawer", "StorageBox"), InRoomNamed("Study", "Office", "Living Room", "Bedroom")),
			Target:      InsideOf("Bookshelf"),
			Description: "A well-worn book.",
		},
		Schema{
			Name:        "Mug",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("KitchenCabinet", "Cupboard"), InRoomNamed("Kitchen", "Dining Room")),
			Target:      InsideOf("KitchenCabinet", "Cupboard"),
			Description: "A ceramic mug.",
		},
		Schema{
			Name:        "Plate",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("KitchenCabinet", "Dishwasher"), InRoomNamed("Kitchen", "Dining Room")),
			Target:      InsideOf("KitchenCabinet"),
			Description: "A dinner plate.",
		},
		Schema{
			Name:        "Apple",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("FruitBowl", "Refrigerator"), InRoomNamed("Kitchen")),
			Target:      InsideOf("FruitBowl"),
			Description: "A fresh apple.",
		},
		Schema{
			Name:        "Towel",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("BathroomCabinet"), InRoomNamed("Bathroom")),
			Target:      InsideOf("BathroomCabinet"),
			Description: "A folded towel.",
		},
		Schema{
			Name:        "Toothbrush",
			Capacity:    0,
			Pickable:    true,
			Constraint:  And(InRoomNamed("Bathroom"), Or(InsideOf("BathroomCabinet"), InRoom())),
			Target:      InsideOf("BathroomCabinet"),
			Description: "A toothbrush.",
		},
		Schema{
			Name:        "Shirt",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("Wardrobe", "Drawer"), InRoomNamed("Bedroom", "Guest Room")),
			Target:      InsideOf("Wardrobe", "Drawer"),
			Description: "A folded shirt.",
		},
		Schema{
			Name:        "Toy",
			Capacity:    0,
			Pickable:    true,
			Constraint:  Or(InsideOf("ToyChest"), InRoomNamed("Playroom")),
			Target:      InsideOf("ToyChest"),
			Description: "A child's toy.",
		},
		Schema{
			Name:        "DeskLamp",
			Capacity:    0,
			Pickable:    true,
			Constraint:  InRoomNamed("Office", "Study", "Bedroom"),
			Target:      InRoom(),
			Description: "A small desk lamp.",
		},
		Schema{
			Name:        "Keys",
			Capacity:    0,
			Pickable:    true,
			Constraint:  And(WorldHas("CoatRack"), InRoomNamed("Hallway")),
			Target:      InRoom(),
			Description: "A set of house keys.",
		},
	)
}
