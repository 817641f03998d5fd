package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Douke77/bookstore-manager/bookstore"
)

// runMenu drives the interactive loop. All prompting, parsing, and
// formatting lives here; the bookstore package only sees typed calls.
func runMenu(mgr *bookstore.Manager) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("*************** Menu ***************")
		fmt.Println("1. Add sale record")
		fmt.Println("2. Show sale report")
		fmt.Println("3. Update sale record")
		fmt.Println("4. Delete sale record")
		fmt.Println("5. Quit")
		fmt.Println("************************************")
		fmt.Print("Choose an option (Enter to quit): ")

		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "":
			return
		case "1":
			handleAddSale(scanner, mgr)
		case "2":
			if err := printSaleReport(mgr); err != nil {
				fmt.Printf("=> Database error: %v\n", err)
			}
		case "3":
			handleUpdateSale(scanner, mgr)
		case "4":
			handleDeleteSale(scanner, mgr)
		case "5":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("=> Please enter a valid option (1-5)")
		}
	}
}

func handleAddSale(sc *bufio.Scanner, mgr *bookstore.Manager) {
	fmt.Print("Sale date (YYYY-MM-DD): ")
	if !sc.Scan() {
		return
	}
	date := strings.TrimSpace(sc.Text())
	if !bookstore.IsValidDate(date) {
		fmt.Println("=> Error: invalid date format")
		return
	}

	fmt.Print("Member ID: ")
	if !sc.Scan() {
		return
	}
	memberID := strings.TrimSpace(sc.Text())

	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	bookID := strings.TrimSpace(sc.Text())

	quantity, ok := promptInt(sc, "Quantity: ", func(n int64) string {
		if n <= 0 {
			return "=> Error: quantity must be a positive integer, try again"
		}
		return ""
	})
	if !ok {
		return
	}

	discount, ok := promptInt(sc, "Discount: ", func(n int64) string {
		if n < 0 {
			return "=> Error: discount cannot be negative, try again"
		}
		return ""
	})
	if !ok {
		return
	}

	total, err := mgr.AddSale(date, memberID, bookID, quantity, discount)
	if err != nil {
		var stockErr *bookstore.InsufficientStockError
		switch {
		case errors.Is(err, bookstore.ErrInvalidReference):
			fmt.Println("=> Error: member or book id invalid")
		case errors.As(err, &stockErr):
			fmt.Printf("=> Error: insufficient stock (current stock: %d)\n", stockErr.Stock)
		default:
			fmt.Printf("=> Database error: %v\n", err)
		}
		return
	}
	fmt.Printf("=> Sale recorded! (total: %s)\n", humanize.Comma(total))
}

func printSaleReport(mgr *bookstore.Manager) error {
	report, err := mgr.SaleReport()
	if err != nil {
		return err
	}

	for _, row := range report {
		if row.Seq == 1 {
			fmt.Println("\n==================== Sale Report ====================")
		}
		fmt.Printf("Sale #%d\n", row.Seq)
		fmt.Printf("Sale ID: %d\n", row.SaleID)
		fmt.Printf("Date: %s\n", row.Date)
		fmt.Printf("Member: %s\n", row.MemberName)
		fmt.Printf("Book: %s\n", row.BookTitle)
		fmt.Println("-----------------------------------------------------")
		fmt.Println("Price\tQty\tDiscount\tSubtotal")
		fmt.Println("-----------------------------------------------------")
		fmt.Printf("%s\t%d\t%s\t%s\n",
			humanize.Comma(row.UnitPrice), row.Quantity,
			humanize.Comma(row.Discount), humanize.Comma(row.Total))
		fmt.Println("-----------------------------------------------------")
		fmt.Printf("Total: %s\n", humanize.Comma(row.Total))
		fmt.Println("=====================================================")
		fmt.Println()
	}
	return nil
}

func handleUpdateSale(sc *bufio.Scanner, mgr *bookstore.Manager) {
	saleID, ok := chooseSale(sc, mgr, "update")
	if !ok {
		return
	}

	newDiscount, ok := promptInt(sc, "New discount: ", func(n int64) string {
		if n < 0 {
			return "=> Error: discount cannot be negative, try again"
		}
		return ""
	})
	if !ok {
		return
	}

	newTotal, err := mgr.UpdateSaleDiscount(saleID, newDiscount)
	if err != nil {
		if errors.Is(err, bookstore.ErrSaleNotFound) {
			fmt.Println("=> Error: sale record not found")
		} else {
			fmt.Printf("=> Database error: %v\n", err)
		}
		return
	}
	fmt.Printf("=> Sale %d updated! (total: %s)\n", saleID, humanize.Comma(newTotal))
}

func handleDeleteSale(sc *bufio.Scanner, mgr *bookstore.Manager) {
	saleID, ok := chooseSale(sc, mgr, "delete")
	if !ok {
		return
	}

	if err := mgr.DeleteSale(saleID); err != nil {
		if errors.Is(err, bookstore.ErrSaleNotFound) {
			fmt.Println("=> Error: sale record not found")
		} else {
			fmt.Printf("=> Database error: %v\n", err)
		}
		return
	}
	fmt.Printf("=> Sale %d deleted!\n", saleID)
}

// chooseSale lists all sales and resolves the user's 1-based choice to
// a sale id. ok is false when there is nothing to pick or the user
// cancels with an empty line.
func chooseSale(sc *bufio.Scanner, mgr *bookstore.Manager, verb string) (saleID int64, ok bool) {
	items, err := mgr.ListSales()
	if err != nil {
		fmt.Printf("=> Database error: %v\n", err)
		return 0, false
	}
	if len(items) == 0 {
		fmt.Printf("No sale records to %s.\n", verb)
		return 0, false
	}

	fmt.Println("\n======== Sale Records ========")
	for i, it := range items {
		fmt.Printf("%d. Sale ID: %d - Member: %s - Date: %s\n", i+1, it.SaleID, it.MemberName, it.Date)
	}
	fmt.Println("==============================")

	for {
		fmt.Printf("Pick a record to %s (number, or Enter to cancel): ", verb)
		if !sc.Scan() {
			return 0, false
		}
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			return 0, false
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(items) {
			fmt.Println("=> Error: please enter a valid number")
			continue
		}
		return items[choice-1].SaleID, true
	}
}

// promptInt re-asks until the input parses as an integer and passes
// check; check returns the message to print when the value is out of
// range. ok is false when stdin closes.
func promptInt(sc *bufio.Scanner, prompt string, check func(int64) string) (n int64, ok bool) {
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
		if err != nil {
			fmt.Println("=> Error: value must be an integer, try again")
			continue
		}
		if msg := check(v); msg != "" {
			fmt.Println(msg)
			continue
		}
		return v, true
	}
}
