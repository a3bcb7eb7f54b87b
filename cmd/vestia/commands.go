package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vestia-market/vestia-cli/internal/api"
	"github.com/vestia-market/vestia-cli/internal/catalog"
	"github.com/vestia-market/vestia-cli/internal/domain"
	"github.com/vestia-market/vestia-cli/internal/session"
)

// postPurchasePause keeps the success message on screen before jumping to
// the purchase history, like the web client does.
const postPurchasePause = 2 * time.Second

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "vestia",
		Short:         "Client for the Vestia clothing marketplace",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCommand(a),
		newRegisterCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newCategoriesCommand(a),
		newProductsCommand(a),
		newProductCommand(a),
		newMyProductsCommand(a),
		newCreateCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newBuyCommand(a),
		newPurchasesCommand(a),
		newSalesCommand(a),
		newUploadCommand(a),
	)
	return root
}

// fail prints the user-facing message for an error and passes the error
// back up so the process exits non-zero. Validation messages are shown as
// written; everything else goes through the remote-or-generic mapping.
func fail(cmd *cobra.Command, err error) error {
	if domain.IsValidation(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), api.UserMessage(err))
	}
	return err
}

func newLoginCommand(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the marketplace",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s\n", user.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(a *app) *cobra.Command {
	var reg session.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a marketplace account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.session.Register(cmd.Context(), reg)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&reg.Address, "address", "", "city / address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password (6 characters minimum)")
	cmd.Flags().StringVar(&reg.PasswordConfirm, "confirm", "", "password confirmation")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.session.Me(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			renderUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.catalog.Categories(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			renderCategories(cmd.OutOrStdout(), categories)
			return nil
		},
	}
}

func newProductsCommand(a *app) *cobra.Command {
	var (
		filter             catalog.Filter
		minPrice, maxPrice string
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filter.MinPrice, err = parsePrice(minPrice); err != nil {
				return fail(cmd, err)
			}
			if filter.MaxPrice, err = parsePrice(maxPrice); err != nil {
				return fail(cmd, err)
			}

			products, err := a.catalog.Search(cmd.Context(), filter)
			if err != nil {
				return fail(cmd, err)
			}
			renderProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "match product names (applied locally)")
	cmd.Flags().StringVar(&filter.CategoryID, "category", "", "category id")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")
	cmd.Flags().StringVar(&filter.Color, "color", "", "color")
	cmd.Flags().StringVar(&filter.Size, "size", "", "size")
	return cmd
}

func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, &domain.ValidationError{Field: "price", Message: "must be a number"}
	}
	return &d, nil
}

func newProductCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.catalog.Get(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err)
			}
			renderProductDetail(cmd.OutOrStdout(), product)
			return nil
		},
	}
}

func newMyProductsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "my-products",
		Short: "List your own listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.catalog.Mine(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			renderProducts(cmd.OutOrStdout(), list.Products())
			return nil
		},
	}
}

func productFormFlags(cmd *cobra.Command, form *catalog.ProductForm, price *string) {
	cmd.Flags().StringVar(&form.Name, "name", "", "product name")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	cmd.Flags().StringVar(price, "price", "", "price")
	cmd.Flags().StringVar(&form.CategoryID, "category", "", "category id")
	cmd.Flags().IntVar(&form.Stock, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&form.Color, "color", "", "color")
	cmd.Flags().StringVar(&form.Size, "size", "", "size")
	cmd.Flags().StringVar(&form.ImageURL, "image", "", "image url from a previous upload")
}

func newCreateCommand(a *app) *cobra.Command {
	var (
		form  catalog.ProductForm
		price string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "List a new product for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if p, err := parsePrice(price); err != nil {
				return fail(cmd, err)
			} else if p != nil {
				form.Price = *p
			}

			product, err := a.catalog.Create(cmd.Context(), form)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s created (%s)\n", product.Name, product.ID)
			return nil
		},
	}
	productFormFlags(cmd, &form, &price)
	return cmd
}

func newUpdateCommand(a *app) *cobra.Command {
	var (
		form  catalog.ProductForm
		price string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if p, err := parsePrice(price); err != nil {
				return fail(cmd, err)
			} else if p != nil {
				form.Price = *p
			}

			product, err := a.catalog.Update(cmd.Context(), args[0], form)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s updated\n", product.ID)
			return nil
		},
	}
	productFormFlags(cmd, &form, &price)
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.catalog.Mine(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}

			product, err := list.StageDelete(args[0])
			if err != nil {
				return fail(cmd, err)
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Delete %q? [y/N] ", product.Name)) {
				list.CancelDelete()
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if err := list.ConfirmDelete(cmd.Context()); err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted. %d listings remain.\n", list.Len())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func newBuyCommand(a *app) *cobra.Command {
	var quantity int
	cmd := &cobra.Command{
		Use:   "buy <product-id>",
		Short: "Purchase a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.catalog.Get(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err)
			}

			total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
			fmt.Fprintf(cmd.OutOrStdout(), "Buying %d x %s for %s\n", quantity, product.Name, formatPrice(total))

			order, err := a.orders.Purchase(cmd.Context(), product, quantity)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purchase confirmed, order %s\n", order.ID)

			time.Sleep(postPurchasePause)
			records, err := a.orders.Purchases(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			renderOrders(cmd.OutOrStdout(), records, true)
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "units to buy")
	return cmd
}

func newPurchasesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purchases",
		Short: "Show your purchase history",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.orders.Purchases(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			renderOrders(cmd.OutOrStdout(), records, true)
			return nil
		},
	}
}

func newSalesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Show your sales and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, stats, err := a.orders.Sales(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			renderStatistics(cmd.OutOrStdout(), stats)
			renderOrders(cmd.OutOrStdout(), records, false)
			return nil
		},
	}
}

func newUploadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a product image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fail(cmd, err)
			}
			defer func() { _ = file.Close() }()

			info, err := file.Stat()
			if err != nil {
				return fail(cmd, err)
			}

			imageURL, err := a.catalog.UploadImage(cmd.Context(), info.Name(), file, info.Size())
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), imageURL)
			return nil
		},
	}
}
