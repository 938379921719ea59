package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/electro-inventory/internal/domain/category"
	"github.com/hugohenrick/electro-inventory/internal/domain/product"
	"github.com/hugohenrick/electro-inventory/internal/domain/transaction"
	"github.com/hugohenrick/electro-inventory/internal/domain/user"
)

// SeedStores agrupa os repositórios em memória que recebem os dados de exemplo
type SeedStores struct {
	Products   *MemoryProductRepository
	Categories *MemoryCategoryRepository
	Sales      *MemorySaleRepository
	Purchases  *MemoryPurchaseRepository
	Users      *MemoryUserRepository
}

type seedCategory struct {
	id       string
	name     string
	desc     string
	parentID string
}

var seedCategories = []seedCategory{
	{"cat-lighting", "Lighting", "Lâmpadas, luminárias e acessórios de iluminação", ""},
	{"cat-bulbs", "Bulbs", "Lâmpadas de LED e incandescentes", "cat-lighting"},
	{"cat-bulbs-osaka", "Osaka", "Linha Osaka de lâmpadas", "cat-bulbs"},
	{"cat-bulbs-osaka-10w", "10 Watt", "", "cat-bulbs-osaka"},
	{"cat-bulbs-osaka-12w", "12 Watt", "", "cat-bulbs-osaka"},
	{"cat-bulbs-philips", "Philips", "Linha Philips de lâmpadas", "cat-bulbs"},
	{"cat-bulbs-philips-7w", "7 Watt", "", "cat-bulbs-philips"},
	{"cat-tubes", "Tube Lights", "Lâmpadas tubulares", "cat-lighting"},
	{"cat-wiring", "Wiring", "Fios, cabos e eletrodutos", ""},
	{"cat-wiring-cables", "Cables", "Cabos flexíveis e rígidos", "cat-wiring"},
	{"cat-switches", "Switches", "Interruptores e tomadas", ""},
}

type seedProduct struct {
	id         string
	sku        string
	name       string
	brand      string
	variant    string
	categoryID string
	purchase   float64
	selling    float64
	quantity   int
	threshold  int
	supplier   string
}

var seedProducts = []seedProduct{
	{"prod-osaka-10w", "OSK-B10W", "Osaka LED Bulb 10W", "Osaka", "10 Watt", "cat-bulbs-osaka-10w", 120, 180, 45, 10, "Osaka Distribuidora"},
	{"prod-osaka-12w", "OSK-B12W", "Osaka LED Bulb 12W", "Osaka", "12 Watt", "cat-bulbs-osaka-12w", 140, 210, 8, 10, "Osaka Distribuidora"},
	{"prod-philips-7w", "PHL-B7W", "Philips LED Bulb 7W", "Philips", "7 Watt", "cat-bulbs-philips-7w", 95, 150, 60, 15, "Philips Brasil"},
	{"prod-tube-20w", "OSK-T20W", "Osaka Tube Light 20W", "Osaka", "20 Watt", "cat-tubes", 200, 320, 0, 5, "Osaka Distribuidora"},
	{"prod-cable-25mm", "WIR-C25", "Flexible Cable 2.5mm (100m)", "Sigma", "2.5mm", "cat-wiring-cables", 350, 520, 22, 8, "Sigma Cabos"},
	{"prod-switch-std", "SWT-STD", "Standard Switch 10A", "Clipsal", "", "cat-switches", 12, 25, 140, 30, "Clipsal Importados"},
}

// Seed popula os repositórios em memória com o catálogo de exemplo,
// um usuário administrador e algumas transações recentes.
func Seed(ctx context.Context, stores SeedStores) error {
	byID := make(map[string]*category.Category, len(seedCategories))
	for _, sc := range seedCategories {
		c, err := category.NewCategory(sc.name, sc.desc, sc.parentID)
		if err != nil {
			return fmt.Errorf("seed categoria %s: %w", sc.name, err)
		}
		c.ID = sc.id
		if err := stores.Categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seed categoria %s: %w", sc.name, err)
		}
		byID[sc.id] = c
	}

	for _, sp := range seedProducts {
		p, err := product.NewProduct(sp.sku, sp.name, sp.brand,
			product.Price{PurchasePrice: sp.purchase, SellingPrice: sp.selling},
			product.Stock{Quantity: sp.quantity, MinThreshold: sp.threshold},
		)
		if err != nil {
			return fmt.Errorf("seed produto %s: %w", sp.name, err)
		}
		p.ID = sp.id
		p.Variant = sp.variant
		p.Supplier = sp.supplier
		if c, ok := byID[sp.categoryID]; ok {
			p.Category = product.CategoryRef{ID: c.ID, Name: c.Name}
		}
		if err := stores.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed produto %s: %w", sp.name, err)
		}
	}

	admin, err := user.NewUser("Admin", "admin@electroinventory.local", "admin123")
	if err != nil {
		return fmt.Errorf("seed usuário: %w", err)
	}
	admin.ID = "user-admin"
	if err := stores.Users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed usuário: %w", err)
	}

	return seedTransactions(ctx, stores)
}

func seedTransactions(ctx context.Context, stores SeedStores) error {
	sale, err := transaction.NewSale("SALE-9F3A21", "Ramesh Traders", transaction.PaymentCash, "", []transaction.Item{
		{ProductID: "prod-osaka-10w", ProductName: "Osaka LED Bulb 10W", ProductSKU: "OSK-B10W", Quantity: 5, Price: 180, Discount: 10, Total: 810},
		{ProductID: "prod-switch-std", ProductName: "Standard Switch 10A", ProductSKU: "SWT-STD", Quantity: 10, Price: 25, Total: 250},
	})
	if err != nil {
		return fmt.Errorf("seed venda: %w", err)
	}
	sale.ID = "sale-seed-1"
	sale.CreatedAt = time.Now().Add(-26 * time.Hour)
	if err := stores.Sales.Create(ctx, sale); err != nil {
		return fmt.Errorf("seed venda: %w", err)
	}

	purchase, err := transaction.NewPurchase("PO-1B77C4", "Osaka Distribuidora", "reposição mensal", []transaction.Item{
		{ProductID: "prod-osaka-12w", ProductName: "Osaka LED Bulb 12W", ProductSKU: "OSK-B12W", Quantity: 20, Price: 140, Total: 2800},
	})
	if err != nil {
		return fmt.Errorf("seed compra: %w", err)
	}
	purchase.ID = "purchase-seed-1"
	purchase.CreatedAt = time.Now().Add(-3 * 24 * time.Hour)
	if err := stores.Purchases.Create(ctx, purchase); err != nil {
		return fmt.Errorf("seed compra: %w", err)
	}

	return nil
}
