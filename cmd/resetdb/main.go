package main

import (
	"fmt"
	"os"

	"github.com/Douke77/bookstore-manager/bookstore"
)

func main() {
	dbPath := "bookstore.db"
	if v := os.Getenv("BOOKSTORE_DB_PATH"); v != "" {
		dbPath = v
	}

	// Remove the database along with SQLite's WAL sidecar files.
	fmt.Println("Cleaning up existing database files...")
	for _, file := range []string{dbPath, dbPath + "-shm", dbPath + "-wal"} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: Could not remove %s: %v\n", file, err)
		}
	}

	mgr, err := bookstore.NewManager(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebuilding database: %v\n", err)
		os.Exit(1)
	}
	defer mgr.Close()

	books, err := mgr.GetAllBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seeded books: %v\n", err)
		os.Exit(1)
	}
	sales, err := mgr.ListSales()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seeded sales: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rebuilt %s with seed data: %d books, %d sales.\n", dbPath, len(books), len(sales))
}
