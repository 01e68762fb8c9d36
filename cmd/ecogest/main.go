// ecogest é o cliente de linha de comando da API EcoGest. Autentica,
// consulta os cadastros e as visões financeiras através da camada de cache
// e baixa recibos e boletos classificando o conteúdo pelo magic number.
//
// Uso:
//
//	ecogest <recurso> <ação> [flags]
//
//	ecogest person list --name jose
//	ecogest sale get 3
//	ecogest payble pay 2 --date 2026-08-30
//	ecogest kpi monthly --year 2026
//	ecogest sale receipt 3 --out ./recibos
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/internal/domain/entity"
	"github.com/ecogest/ecogest-go/internal/application/query"
	"github.com/ecogest/ecogest-go/internal/infrastructure/memcache"
	"github.com/ecogest/ecogest-go/internal/infrastructure/rest"
	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/logger"
	"github.com/ecogest/ecogest-go/pkg/sniff"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: ecogest <recurso> <ação> [flags]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("carregar configuração: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	api := rest.New(cfg.API, log)
	q := query.New(api, memcache.New(), log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.API.Timeout)*time.Second)
	defer cancel()

	if _, err := api.Login(ctx, cfg.API.Username, cfg.API.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	resource, action, rem := args[0], args[1], args[2:]
	switch resource {
	case "person", "product", "employee", "entry", "sale", "purchase", "payble", "recive":
		return runEntity(ctx, q, resource, action, rem)
	case "kpi":
		return runKPI(ctx, q, action, rem)
	default:
		return fmt.Errorf("recurso desconhecido: %s", resource)
	}
}

// listFlags flags comuns das listagens.
func listFlags(fs *flag.FlagSet) *dto.ListFilter {
	f := &dto.ListFilter{}
	fs.IntVar(&f.Skip, "skip", 0, "registros a pular")
	fs.IntVar(&f.Take, "take", 20, "tamanho da página")
	fs.StringVar(&f.Name, "name", "", "busca por nome (mínimo 3 caracteres)")
	fs.StringVar(&f.Status, "status", "", "filtro por status (Aberto|Pago|Atrasado)")
	fs.Func("start", "início do período (YYYY-MM-DD)", dateFlag(&f.StartDate))
	fs.Func("end", "fim do período (YYYY-MM-DD)", dateFlag(&f.EndDate))
	return f
}

func dateFlag(dst **time.Time) func(string) error {
	return func(s string) error {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return err
		}
		*dst = &t
		return nil
	}
}

func runEntity(ctx context.Context, q *query.Client, resource, action string, args []string) error {
	switch action {
	case "list":
		fs := flag.NewFlagSet(resource+" list", flag.ExitOnError)
		f := listFlags(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		return printList(ctx, q, resource, *f)

	case "get":
		id, _, err := idArg(args)
		if err != nil {
			return err
		}
		return printDetail(ctx, q, resource, id)

	case "create":
		return createEntity(ctx, q, resource, args)

	case "delete":
		id, _, err := idArg(args)
		if err != nil {
			return err
		}
		return deleteEntity(ctx, q, resource, id)

	case "pay":
		id, rem, err := idArg(args)
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet(resource+" pay", flag.ExitOnError)
		date := fs.String("date", time.Now().Format("2006-01-02"), "data do pagamento (YYYY-MM-DD)")
		value := fs.String("value", "", "valor pago (vazio = valor do título)")
		if err := fs.Parse(rem); err != nil {
			return err
		}
		return payTitle(ctx, q, resource, id, *date, *value)

	case "status":
		id, rem, err := idArg(args)
		if err != nil {
			return err
		}
		if len(rem) == 0 {
			return fmt.Errorf("uso: ecogest %s status <id> <Aberto|Atrasado>", resource)
		}
		return setStatus(ctx, q, resource, id, rem[0])

	case "receipt":
		id, rem, err := idArg(args)
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet(resource+" receipt", flag.ExitOnError)
		out := fs.String("out", ".", "diretório de destino")
		if err := fs.Parse(rem); err != nil {
			return err
		}
		return downloadBlob(ctx, q, resource, id, *out)

	default:
		return fmt.Errorf("ação desconhecida: %s %s", resource, action)
	}
}

func idArg(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("id obrigatório")
	}
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return 0, nil, fmt.Errorf("id inválido: %s", args[0])
	}
	return id, args[1:], nil
}

func printList(ctx context.Context, q *query.Client, resource string, f dto.ListFilter) error {
	switch resource {
	case "person":
		return render(q.Persons(ctx, f))
	case "product":
		return render(q.Products(ctx, f))
	case "employee":
		return render(q.Employees(ctx, f))
	case "entry":
		return render(q.Entries(ctx, f))
	case "sale":
		return render(q.Sales(ctx, f))
	case "purchase":
		return render(q.Purchases(ctx, f))
	case "payble":
		return render(q.Paybles(ctx, f))
	case "recive":
		return render(q.Recives(ctx, f))
	}
	return fmt.Errorf("recurso sem listagem: %s", resource)
}

func printDetail(ctx context.Context, q *query.Client, resource string, id int64) error {
	switch resource {
	case "person":
		return render(q.Person(ctx, id))
	case "product":
		return render(q.Product(ctx, id))
	case "employee":
		return render(q.Employee(ctx, id))
	case "entry":
		return render(q.Entry(ctx, id))
	case "sale":
		return render(q.Sale(ctx, id))
	case "purchase":
		return render(q.Purchase(ctx, id))
	case "payble":
		return render(q.Payble(ctx, id))
	case "recive":
		return render(q.Recive(ctx, id))
	}
	return fmt.Errorf("recurso sem detalhe: %s", resource)
}

// createEntity monta o payload de criação a partir das flags do recurso, ou
// de um arquivo JSON via --json ("-" lê da entrada padrão). Vendas e compras
// recebem itens repetindo --item produto:quantidade:preço.
func createEntity(ctx context.Context, q *query.Client, resource string, args []string) error {
	fs := flag.NewFlagSet(resource+" create", flag.ExitOnError)
	jsonPath := fs.String("json", "", "arquivo JSON com o payload (- para stdin)")
	switch resource {
	case "person":
		var p entity.Person
		fs.StringVar(&p.Name, "name", "", "nome")
		fs.StringVar(&p.Document, "document", "", "CPF ou CNPJ")
		fs.StringVar(&p.Contact, "contact", "", "telefone ou e-mail")
		fs.StringVar(&p.Address, "address", "", "endereço")
		fs.StringVar(&p.Type, "type", entity.PersonTypeCustomer, "customer | supplier")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := loadJSON(*jsonPath, &p); err != nil {
			return err
		}
		out, err := q.CreatePerson(ctx, p)
		if err != nil {
			return err
		}
		return printJSON(out)

	case "product":
		var p entity.Product
		fs.StringVar(&p.Name, "name", "", "material")
		fs.Func("price", "preço por kg", decimalFlag(&p.Price))
		fs.Func("weight", "estoque em kg", decimalFlag(&p.WeightAmount))
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := loadJSON(*jsonPath, &p); err != nil {
			return err
		}
		out, err := q.CreateProduct(ctx, p)
		if err != nil {
			return err
		}
		return printJSON(out)

	case "entry":
		var e entity.Entry
		var date string
		fs.StringVar(&e.Type, "type", "", "gain | loss")
		fs.StringVar(&e.Subtype, "subtype", "", "categoria (frete, energia...)")
		fs.Func("value", "valor", decimalFlag(&e.Value))
		fs.StringVar(&date, "date", time.Now().Format("2006-01-02"), "data (YYYY-MM-DD)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *jsonPath != "" {
			if err := loadJSON(*jsonPath, &e); err != nil {
				return err
			}
		} else {
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("date inválida: %s", date)
			}
			e.Date = d
		}
		out, err := q.CreateEntry(ctx, e)
		if err != nil {
			return err
		}
		return printJSON(out)

	case "sale", "purchase":
		var in dto.CreateSaleRequest
		var items itemList
		fs.Int64Var(&in.PersonID, "person", 0, "id do cliente/fornecedor")
		fs.Var(&items, "item", "item produto:quantidade:preço (repetível)")
		fs.Func("discount", "desconto", decimalFlag(&in.Discount))
		fs.StringVar(&in.Date, "date", time.Now().Format("2006-01-02"), "data da operação")
		fs.StringVar(&in.DataVencimento, "due", "", "vencimento do título (YYYY-MM-DD)")
		fs.StringVar(&in.NFe, "nfe", "", "referência da nota fiscal")
		slipPath := fs.String("slip", "", "arquivo do boleto (só compras)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		in.Products = items
		if err := loadJSON(*jsonPath, &in); err != nil {
			return err
		}

		if resource == "sale" {
			out, err := q.CreateSale(ctx, in)
			if err != nil {
				return err
			}
			return printJSON(out)
		}
		var slip []byte
		if *slipPath != "" {
			b, err := os.ReadFile(*slipPath)
			if err != nil {
				return err
			}
			slip = b
		}
		out, err := q.CreatePurchase(ctx, dto.CreatePurchaseRequest(in), slip, filepath.Base(*slipPath))
		if err != nil {
			return err
		}
		return printJSON(out)
	}
	return fmt.Errorf("recurso sem criação: %s", resource)
}

// loadJSON preenche dst a partir do arquivo indicado; path vazio é no-op e
// "-" lê da entrada padrão.
func loadJSON(path string, dst any) error {
	if path == "" {
		return nil
	}
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("payload JSON inválido: %w", err)
	}
	return nil
}

// itemList flag repetível produto:quantidade:preço.
type itemList []entity.LineItem

func (l *itemList) String() string { return fmt.Sprintf("%d itens", len(*l)) }

func (l *itemList) Set(s string) error {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("item deve ser produto:quantidade:preço")
	}
	var it entity.LineItem
	if _, err := fmt.Sscanf(parts[0], "%d", &it.ProductID); err != nil {
		return fmt.Errorf("produto inválido: %s", parts[0])
	}
	q, err := decimal.NewFromString(parts[1])
	if err != nil {
		return fmt.Errorf("quantidade inválida: %s", parts[1])
	}
	p, err := decimal.NewFromString(parts[2])
	if err != nil {
		return fmt.Errorf("preço inválido: %s", parts[2])
	}
	it.Quantity, it.Price = q, p
	*l = append(*l, it)
	return nil
}

func decimalFlag(dst *decimal.Decimal) func(string) error {
	return func(s string) error {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}

func deleteEntity(ctx context.Context, q *query.Client, resource string, id int64) error {
	var err error
	switch resource {
	case "person":
		err = q.DeletePerson(ctx, id)
	case "product":
		err = q.DeleteProduct(ctx, id)
	case "employee":
		err = q.DeleteEmployee(ctx, id)
	case "entry":
		err = q.DeleteEntry(ctx, id)
	case "sale":
		err = q.DeleteSale(ctx, id)
	case "purchase":
		err = q.DeletePurchase(ctx, id)
	default:
		return fmt.Errorf("recurso sem exclusão: %s", resource)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s %d excluído\n", resource, id)
	return nil
}

func payTitle(ctx context.Context, q *query.Client, resource string, id int64, date, value string) error {
	in := dto.PaymentRequest{DataPagamento: date}
	if value != "" {
		v, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("valor inválido: %s", value)
		}
		in.PayedValue = v
	}
	switch resource {
	case "payble":
		out, err := q.PayPayble(ctx, id, in)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "recive":
		out, err := q.PayRecive(ctx, id, in)
		if err != nil {
			return err
		}
		return printJSON(out)
	}
	return fmt.Errorf("recurso sem baixa: %s", resource)
}

func setStatus(ctx context.Context, q *query.Client, resource string, id int64, status string) error {
	switch resource {
	case "payble":
		out, err := q.UpdatePaybleStatus(ctx, id, status)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "recive":
		out, err := q.UpdateReciveStatus(ctx, id, status)
		if err != nil {
			return err
		}
		return printJSON(out)
	}
	return fmt.Errorf("recurso sem status: %s", resource)
}

// downloadBlob baixa o recibo (ou boleto) e nomeia o arquivo pela extensão
// detectada no conteúdo.
func downloadBlob(ctx context.Context, q *query.Client, resource string, id int64, dir string) error {
	var (
		blob   []byte
		prefix string
		err    error
	)
	switch resource {
	case "sale":
		blob, err = q.API().SaleReceipt(ctx, id)
		prefix = "recibo-venda"
	case "product":
		blob, err = q.API().ProductReceipt(ctx, id)
		prefix = "ficha-material"
	case "purchase":
		blob, err = q.API().PurchasePaymentSlip(ctx, id)
		prefix = "boleto-compra"
	default:
		return fmt.Errorf("recurso sem download: %s", resource)
	}
	if err != nil {
		return err
	}

	kind := sniff.Classify(blob)
	name := filepath.Join(dir, fmt.Sprintf("%s-%d%s", prefix, id, kind.Ext()))
	if err := os.WriteFile(name, blob, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s (%d bytes, %s)\n", name, len(blob), kind)
	return nil
}

func runKPI(ctx context.Context, q *query.Client, action string, args []string) error {
	fs := flag.NewFlagSet("kpi "+action, flag.ExitOnError)
	f := dto.KPIFilter{}
	fs.IntVar(&f.Year, "year", time.Now().Year(), "ano")
	fs.IntVar(&f.Month, "month", 0, "mês (visão diária)")
	fs.Func("person", "filtrar por pessoa", int64Flag(&f.PersonID))
	fs.Func("product", "filtrar por material", int64Flag(&f.ProductID))
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch action {
	case "monthly":
		return render(q.CashFlowMonthly(ctx, f))
	case "daily":
		if f.Month == 0 {
			f.Month = int(time.Now().Month())
		}
		return render(q.CashFlowDaily(ctx, f))
	case "balance":
		return render(q.Balance(ctx, f))
	case "payble-counts":
		return render(q.PaybleCounts(ctx))
	case "recive-counts":
		return render(q.ReciveCounts(ctx))
	default:
		return fmt.Errorf("visão desconhecida: kpi %s", action)
	}
}

func int64Flag(dst **int64) func(string) error {
	return func(s string) error {
		var v int64
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

// render imprime o resultado de uma consulta, sinalizando consultas inativas.
func render[T any](r query.Result[T]) error {
	if r.Inactive() {
		fmt.Println("consulta inativa: filtros insuficientes (nome < 3 caracteres ou período incompleto)")
		return nil
	}
	if r.IsError() {
		return r.Err
	}
	return printJSON(r.Data)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
