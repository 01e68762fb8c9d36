// Package stubserver implementa um substituto local da API EcoGest para
// desenvolvimento e testes de integração: mesma superfície REST, dados em
// memória. Não é o backend de produção; persistência e regras fiscais ficam
// fora daqui.
package stubserver

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecogest/ecogest-go/internal/domain/entity"
)

type stubUser struct {
	entity.User
	PasswordHash []byte
}

// Dataset estado em memória do stub. Um mutex único basta: o stub atende
// volumes de desenvolvimento, não de produção.
type Dataset struct {
	mu  sync.Mutex
	seq map[string]int64

	users     map[int64]stubUser
	persons   map[int64]entity.Person
	products  map[int64]entity.Product
	employees map[int64]entity.Employee
	entries   map[int64]entity.Entry
	sales     map[int64]entity.Sale
	purchases map[int64]entity.Purchase
	paybles   map[int64]entity.Payable
	recives   map[int64]entity.Receivable
	slips     map[int64][]byte // boleto por compra
}

// NewDataset cria o estado com os usuários e cadastros de exemplo.
func NewDataset() *Dataset {
	d := &Dataset{
		seq:       make(map[string]int64),
		users:     make(map[int64]stubUser),
		persons:   make(map[int64]entity.Person),
		products:  make(map[int64]entity.Product),
		employees: make(map[int64]entity.Employee),
		entries:   make(map[int64]entity.Entry),
		sales:     make(map[int64]entity.Sale),
		purchases: make(map[int64]entity.Purchase),
		paybles:   make(map[int64]entity.Payable),
		recives:   make(map[int64]entity.Receivable),
		slips:     make(map[int64][]byte),
	}
	d.seed()
	return d
}

func (d *Dataset) next(name string) int64 {
	d.seq[name]++
	return d.seq[name]
}

// seed popula usuários (admin/admin e operador/operador) e alguns cadastros.
func (d *Dataset) seed() {
	for _, u := range []struct {
		username, name, role, password string
	}{
		{"admin", "Administrador", entity.RoleAdmin, "admin"},
		{"operador", "Operador", entity.RoleStandard, "operador"},
	} {
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		id := d.next("user")
		d.users[id] = stubUser{
			User:         entity.User{ID: id, Username: u.username, Name: u.name, Role: u.role},
			PasswordHash: hash,
		}
	}

	for _, p := range []entity.Person{
		{Name: "José da Silva Sucatas", Document: "12.345.678/0001-90", Contact: "(11) 98888-0001", Address: "Rua das Flores, 10", Type: entity.PersonTypeSupplier},
		{Name: "Recicla São Paulo Ltda", Document: "98.765.432/0001-10", Contact: "(11) 97777-0002", Address: "Av. Industrial, 1200", Type: entity.PersonTypeCustomer},
		{Name: "Maria Aparecida Comércio", Document: "456.789.123-00", Contact: "(11) 96666-0003", Address: "Rua do Comércio, 55", Type: entity.PersonTypeCustomer},
	} {
		p.ID = d.next("person")
		d.persons[p.ID] = p
	}

	for _, p := range []entity.Product{
		{Name: "Papelão", WeightAmount: decimal.NewFromInt(12500), Price: decimal.NewFromFloat(0.85)},
		{Name: "Alumínio", WeightAmount: decimal.NewFromInt(3200), Price: decimal.NewFromFloat(6.40)},
		{Name: "PET", WeightAmount: decimal.NewFromInt(8100), Price: decimal.NewFromFloat(2.10)},
	} {
		p.ID = d.next("product")
		d.products[p.ID] = p
	}

	admission := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	emp := entity.Employee{
		Registration:  "0001",
		Name:          "Carlos Pereira",
		Document:      "321.654.987-00",
		Role:          "Prensista",
		Salary:        decimal.NewFromInt(2400),
		AdmissionDate: admission,
		Address:       "Rua Sete, 7",
	}
	emp.ID = d.next("employee")
	d.employees[emp.ID] = emp
}

// ── Acesso ordenado (determinístico para paginação) ──────────────────────────

func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
