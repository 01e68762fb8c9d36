package entity

// Tipos de pessoa. O mesmo cadastro atende clientes (vendas) e fornecedores (compras).
const (
	PersonTypeCustomer = "customer"
	PersonTypeSupplier = "supplier"
)

// Person representa um cliente ou fornecedor.
type Person struct {
	ID       int64  `json:"personId"`
	Name     string `json:"name"`
	Document string `json:"document"` // CPF ou CNPJ
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Type     string `json:"type"` // customer | supplier
}
