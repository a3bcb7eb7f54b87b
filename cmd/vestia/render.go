package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/vestia-market/vestia-cli/internal/domain"
)

func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderUser(w io.Writer, user *domain.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", user.FullName)
	fmt.Fprintf(tw, "Email:\t%s\n", user.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", user.Phone)
	fmt.Fprintf(tw, "Address:\t%s\n", user.Address)
	_ = tw.Flush()
}

func renderCategories(w io.Writer, categories []domain.Category) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	_ = tw.Flush()
}

func renderProducts(w io.Writer, products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tCOLOR\tSIZE")
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		switch p.Availability() {
		case domain.AvailabilityOutOfStock:
			stock = "sold out"
		case domain.AvailabilityLowStock:
			stock += " (low)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, formatPrice(p.Price), stock, p.Color, p.Size)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d products found\n", len(products))
}

func renderProductDetail(w io.Writer, p *domain.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
	fmt.Fprintf(tw, "Price:\t%s\n", formatPrice(p.Price))
	fmt.Fprintf(tw, "Stock:\t%d\n", p.Stock)
	if p.Color != "" {
		fmt.Fprintf(tw, "Color:\t%s\n", p.Color)
	}
	if p.Size != "" {
		fmt.Fprintf(tw, "Size:\t%s\n", p.Size)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", p.ImageURL)
	}
	_ = tw.Flush()
}

// renderOrders prints derived order records. Degraded records (a detail
// fetch failed during aggregation) still show with their summary fields.
func renderOrders(w io.Writer, records []domain.OrderRecord, withSeller bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No orders yet")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "ORDER\tPRODUCT\tQTY\tTOTAL\tSTATUS\tDATE"
	if withSeller {
		header += "\tSELLER"
	}
	fmt.Fprintln(tw, header)

	for _, r := range records {
		name := "(unavailable)"
		if r.Product != nil {
			name = r.Product.Name
		}
		line := fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s",
			r.ID, name, r.Quantity, formatPrice(r.Total()), r.Status,
			r.CreatedAt.Format("2006-01-02 15:04"))
		if withSeller {
			seller := ""
			if r.Seller != nil {
				seller = r.Seller.FullName
			}
			line += "\t" + seller
		}
		fmt.Fprintln(tw, line)
	}
	_ = tw.Flush()
}

func renderStatistics(w io.Writer, stats domain.SalesStatistics) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOTAL\tPENDING\tCOMPLETED\tREVENUE")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", stats.Total, stats.Pending, stats.Completed, formatPrice(stats.Revenue))
	_ = tw.Flush()
}
