package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReference = errors.New("referência não pode ser vazia")
	ErrNoItems        = errors.New("transação precisa de ao menos um item")
	ErrEmptySupplier  = errors.New("fornecedor não pode ser vazio")
	ErrNotFound       = errors.New("transação não encontrada")
)

// PaymentMethod representa a forma de pagamento de uma venda
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"    // Dinheiro
	PaymentDigital PaymentMethod = "Digital" // Pagamento digital
)

// Item representa um item de uma venda ou compra
type Item struct {
	ProductID   string  `json:"product"`     // ID do Produto
	ProductName string  `json:"productName"` // Nome do Produto
	ProductSKU  string  `json:"productSku"`  // SKU do Produto
	Quantity    int     `json:"quantity"`    // Quantidade
	Price       float64 `json:"price"`       // Preço unitário
	Discount    float64 `json:"discount"`    // Desconto em percentual [0,100]
	Total       float64 `json:"total"`       // Total da linha
}

// Sale representa uma venda registrada
type Sale struct {
	ID            string        `json:"_id"`             // ID da Venda
	Reference     string        `json:"reference"`       // Número da fatura (ex: SALE-123456)
	Customer      string        `json:"customer"`        // Cliente (vazio para consumidor avulso)
	PaymentMethod PaymentMethod `json:"paymentMethod"`   // Forma de Pagamento
	Notes         string        `json:"notes,omitempty"` // Observações
	TotalAmount   float64       `json:"totalAmount"`     // Valor total
	Items         []Item        `json:"products"`        // Itens da venda
	CreatedAt     time.Time     `json:"createdAt"`       // Data de Criação
}

// Purchase representa uma compra (entrada de estoque) registrada
type Purchase struct {
	ID          string    `json:"_id"`             // ID da Compra
	Reference   string    `json:"reference"`       // Número do pedido (ex: PO-123456)
	Supplier    string    `json:"supplier"`        // Fornecedor
	Notes       string    `json:"notes,omitempty"` // Observações
	TotalAmount float64   `json:"totalAmount"`     // Valor total
	Items       []Item    `json:"products"`        // Itens da compra
	CreatedAt   time.Time `json:"createdAt"`       // Data de Criação
}

// NewSale cria uma nova venda a partir dos itens informados
func NewSale(reference, customer string, method PaymentMethod, notes string, items []Item) (*Sale, error) {
	if reference == "" {
		return nil, ErrEmptyReference
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := 0.0
	for _, it := range items {
		total += it.Total
	}

	return &Sale{
		Reference:     reference,
		Customer:      customer,
		PaymentMethod: method,
		Notes:         notes,
		TotalAmount:   total,
		Items:         items,
		CreatedAt:     time.Now(),
	}, nil
}

// NewPurchase cria uma nova compra a partir dos itens informados
func NewPurchase(reference, supplier, notes string, items []Item) (*Purchase, error) {
	if reference == "" {
		return nil, ErrEmptyReference
	}
	if supplier == "" {
		return nil, ErrEmptySupplier
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	total := 0.0
	for _, it := range items {
		total += it.Total
	}

	return &Purchase{
		Reference:   reference,
		Supplier:    supplier,
		Notes:       notes,
		TotalAmount: total,
		Items:       items,
		CreatedAt:   time.Now(),
	}, nil
}

// NewReference gera uma referência com o prefixo informado (SALE, PO)
// e um sufixo curto derivado de um UUID
func NewReference(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s", prefix, suffix)
}
