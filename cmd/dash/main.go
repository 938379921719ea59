package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/electro-inventory/internal/adapter/repository"
	"github.com/hugohenrick/electro-inventory/internal/domain/category"
	"github.com/hugohenrick/electro-inventory/internal/domain/notification"
	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
	"github.com/hugohenrick/electro-inventory/internal/report"
	"github.com/hugohenrick/electro-inventory/pkg/export"
	"github.com/hugohenrick/electro-inventory/pkg/httpclient"
	"github.com/hugohenrick/electro-inventory/pkg/logger"
	"github.com/hugohenrick/electro-inventory/pkg/session"
	"github.com/hugohenrick/electro-inventory/pkg/validator"
)

const usage = `Uso: dash <comando> [opções]

Comandos:
  login          Autentica no servidor e grava a sessão
  logout         Encerra a sessão local
  products       Lista os produtos do catálogo
  categories     Mostra a árvore de categorias
  sales          Lista as vendas registradas
  purchases      Lista as compras registradas
  report         Resumo do inventário e lucro por período
  export         Exporta vendas ou compras em CSV
  notifications  Mostra as notificações agrupadas por data
`

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Aviso: erro ao carregar .env: %v\n", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		if validator.IsValidationError(err) {
			for _, msg := range validator.Messages(err) {
				fmt.Fprintf(os.Stderr, "Erro: %s\n", msg)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		}
		os.Exit(1)
	}
}

func sessionPath() string {
	if p := os.Getenv("SESSION_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".electro-inventory-session"
	}
	return filepath.Join(home, ".electro-inventory", "session")
}

// newClient monta o cliente HTTP com a sessão persistida da CLI
func newClient() (*httpclient.Client, *session.Session, error) {
	sess, err := session.NewFromFile(sessionPath())
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao carregar sessão: %w", err)
	}

	client := httpclient.New(httpclient.NewConfigFromEnv(), sess, logger.NewLogger())
	client.OnUnauthorized(func() {
		fmt.Fprintln(os.Stderr, "Sessão expirada. Faça login novamente com: dash login")
	})
	return client, sess, nil
}

func run(command string, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch command {
	case "login":
		return runLogin(ctx, args)
	case "logout":
		return runLogout(args)
	case "products":
		return runProducts(ctx, args)
	case "categories":
		return runCategories(ctx, args)
	case "sales":
		return runSales(ctx, args)
	case "purchases":
		return runPurchases(ctx, args)
	case "report":
		return runReport(ctx, args)
	case "export":
		return runExport(ctx, args)
	case "notifications":
		return runNotifications(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("comando desconhecido: %s", command)
	}
}

func runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Email de login")
	password := fs.String("password", "", "Senha")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("informe -email e -password")
	}

	client, sess, err := newClient()
	if err != nil {
		return err
	}

	authService := repository.NewRestAuthService(client, sess)
	resp, err := authService.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("Autenticado como %s <%s>\n", resp.User.Name, resp.User.Email)
	if exp, err := sess.ExpiresAt(); err == nil {
		fmt.Printf("Sessão válida até %s\n", exp.Format("02/01/2006 15:04"))
	}
	return nil
}

func runLogout(args []string) error {
	_, sess, err := newClient()
	if err != nil {
		return err
	}
	sess.Invalidate()
	fmt.Println("Sessão encerrada")
	return nil
}

func runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	search := fs.String("search", "", "Busca por nome, SKU ou marca")
	categoryID := fs.String("category", "", "Filtra por categoria")
	limit := fs.Int("limit", 20, "Quantidade máxima de itens")
	offset := fs.Int("offset", 0, "Deslocamento para paginação")
	fs.Parse(args)

	client, _, err := newClient()
	if err != nil {
		return err
	}

	products, err := repository.NewRestProductRepository(client).List(ctx, product.ListFilter{
		Search:   *search,
		Category: *categoryID,
		Limit:    *limit,
		Offset:   *offset,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-34s %-14s %10s %8s\n", "SKU", "PRODUTO", "SITUAÇÃO", "PREÇO", "ESTOQUE")
	for _, p := range products {
		fmt.Printf("%-12s %-34s %-14s %10.2f %8d\n", p.SKU, p.Name, p.StockStatus(), p.Price.SellingPrice, p.Stock.Quantity)
	}
	fmt.Printf("\n%d produto(s)\n", len(products))
	return nil
}

func runCategories(ctx context.Context, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	tree, err := repository.NewRestCategoryRepository(client).List(ctx)
	if err != nil {
		return err
	}

	for _, row := range category.Flatten(tree) {
		indent := strings.Repeat("  ", row.Depth)
		fmt.Printf("%s%s (%d produtos, R$ %.2f)\n", indent, row.Name, row.ProductCount, row.StockValue)
	}
	fmt.Printf("\n%d categoria(s)\n", category.CountNodes(tree))
	return nil
}

func runSales(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sales", flag.ExitOnError)
	search := fs.String("search", "", "Busca por referência ou cliente")
	fs.Parse(args)

	client, _, err := newClient()
	if err != nil {
		return err
	}

	sales, err := repository.NewRestSaleRepository(client).List(ctx, transaction.ListFilter{Search: *search})
	if err != nil {
		return err
	}

	for _, s := range sales {
		customer := s.Customer
		if customer == "" {
			customer = "Walk-in Customer"
		}
		fmt.Printf("%-14s %-12s %-24s %-8s %10.2f\n",
			s.Reference, s.CreatedAt.Format("02/01/2006"), customer, s.PaymentMethod, s.TotalAmount)
	}
	fmt.Printf("\n%d venda(s)\n", len(sales))
	return nil
}

func runPurchases(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("purchases", flag.ExitOnError)
	search := fs.String("search", "", "Busca por referência ou fornecedor")
	fs.Parse(args)

	client, _, err := newClient()
	if err != nil {
		return err
	}

	purchases, err := repository.NewRestPurchaseRepository(client).List(ctx, transaction.ListFilter{Search: *search})
	if err != nil {
		return err
	}

	for _, p := range purchases {
		fmt.Printf("%-14s %-12s %-24s %10.2f\n",
			p.Reference, p.CreatedAt.Format("02/01/2006"), p.Supplier, p.TotalAmount)
	}
	fmt.Printf("\n%d compra(s)\n", len(purchases))
	return nil
}

func runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	period := fs.String("period", "day", "Período dos baldes de lucro: day, week ou month")
	top := fs.Int("top", 5, "Quantidade de produtos mais vendidos")
	fs.Parse(args)

	client, _, err := newClient()
	if err != nil {
		return err
	}

	products, err := repository.NewRestProductRepository(client).List(ctx, product.ListFilter{Limit: 100})
	if err != nil {
		return err
	}
	sales, err := repository.NewRestSaleRepository(client).List(ctx, transaction.ListFilter{})
	if err != nil {
		return err
	}

	ov := report.BuildOverview(products)
	fmt.Printf("Produtos ativos:   %d\n", ov.ProductCount)
	fmt.Printf("Unidades:          %d\n", ov.TotalStockUnits)
	fmt.Printf("Valor do estoque:  R$ %.2f\n", ov.TotalStockValue)
	fmt.Printf("Estoque baixo:     %d\n", len(ov.LowStock))
	fmt.Printf("Sem estoque:       %d\n", len(ov.OutOfStock))

	catalog := make(map[string]*product.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	fmt.Printf("\nLucro por %s:\n", *period)
	for _, b := range report.ProfitReport(sales, catalog, report.Period(*period)) {
		fmt.Printf("  %-12s receita %10.2f  custo %10.2f  lucro %10.2f\n", b.Label, b.Revenue, b.Cost, b.Profit)
	}

	fmt.Println("\nMais vendidos:")
	for i, t := range report.TopSellers(sales, *top) {
		fmt.Printf("  %d. %-34s %4d un  R$ %.2f\n", i+1, t.ProductName, t.Quantity, t.Revenue)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	kind := fs.String("type", "sales", "Tipo de exportação: sales ou purchases")
	outDir := fs.String("out", ".", "Diretório de saída")
	fs.Parse(args)

	client, _, err := newClient()
	if err != nil {
		return err
	}

	var filename, content string
	switch *kind {
	case "sales":
		sales, err := repository.NewRestSaleRepository(client).List(ctx, transaction.ListFilter{})
		if err != nil {
			return err
		}
		filename, content = export.SalesCSV(sales, time.Now())
	case "purchases":
		purchases, err := repository.NewRestPurchaseRepository(client).List(ctx, transaction.ListFilter{})
		if err != nil {
			return err
		}
		filename, content = export.PurchasesCSV(purchases, time.Now())
	default:
		return fmt.Errorf("tipo de exportação desconhecido: %s", *kind)
	}

	path := filepath.Join(*outDir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	fmt.Printf("Exportado para %s\n", path)
	return nil
}

func runNotifications(args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	unread := fs.Bool("unread", false, "Mostra apenas a contagem de não lidas")
	fs.Parse(args)

	now := time.Now()
	repo := notification.NewMockRepository(20, now.UnixNano(), now)

	if *unread {
		fmt.Printf("%d notificação(ões) não lida(s)\n", repo.UnreadCount())
		return nil
	}

	for _, group := range notification.GroupByDate(repo.List(), now) {
		fmt.Printf("%s\n", group.Label)
		for _, n := range group.Notifications {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("  %s [%s] %s: %s\n", marker, n.Type, n.Title, n.Message)
		}
	}
	return nil
}
