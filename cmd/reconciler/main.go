package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"order-reconciliation/internal/gateway"
	"order-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	transactionsFile := flag.String("transactions", "", "Path to the transaction snapshot JSON file (required)")
	ordersFile := flag.String("orders", "", "Path to the order snapshot JSON file (required)")
	userID := flag.String("user", "", "Identifier of the acting user (required)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Validate required flags
	if *transactionsFile == "" || *ordersFile == "" || *userID == "" {
		fmt.Println("Error: All flags (-transactions, -orders, -user) are required.")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository (the outermost layer)
	snapshotRepo := gateway.NewJSONSnapshotRepository(logger)

	// 2. Create the usecase and inject the repository (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(snapshotRepo)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), *transactionsFile, *ordersFile, *userID)
	if err != nil {
		logger.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
