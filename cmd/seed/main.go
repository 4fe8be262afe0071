// Seeds the store with a handful of sample orders for local development.
package main

import (
	"context"

	"coffeequeue/cmd"
	"coffeequeue/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
)

type sampleOrder struct {
	customerName string
	drink        string
	size         string
	notes        string
}

var sampleOrders = []sampleOrder{
	{customerName: "Alex", drink: "Latte", size: "Large", notes: "Oat milk"},
	{customerName: "Sam", drink: "Espresso", size: "Small", notes: "Double shot"},
	{customerName: "Kim", drink: "Mocha", size: "Medium", notes: "Less sugar"},
}

func main() {
	configs := cmd.LoadConfig()

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer func() {
		_ = cmd.CloseDatabase(db)
	}()

	root := cmd.NewCompositionRoot(configs, db)
	handler := root.CreateCreateOrderCommandHandler()

	ctx := context.Background()
	for _, sample := range sampleOrders {
		command, err := commands.NewCreateOrderCommand(sample.customerName, sample.drink, sample.size, sample.notes)
		if err != nil {
			log.Fatalf("Invalid sample order: %v", err)
		}

		created, err := handler.Handle(ctx, command)
		if err != nil {
			log.Fatalf("Error seeding order: %v", err)
		}
		log.Infof("Seeded order %d (%s for %s)", created.ID(), created.Drink(), created.CustomerName())
	}

	log.Info("Seeded sample orders.")
}
