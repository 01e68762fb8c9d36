package query

// Nomes lógicos de recurso. As grafias "payble" e "recive" são as chaves
// históricas do backend e ficam preservadas para manter o contrato.
const (
	ResourcePersonsList   = "persons-list"
	ResourcePerson        = "person"
	ResourceProductsList  = "products-list"
	ResourceProduct       = "product"
	ResourceEmployeesList = "employees-list"
	ResourceEmployee      = "employee"
	ResourceEntriesList   = "entries-list"
	ResourceEntry         = "entry"
	ResourceSalesList     = "sales-list"
	ResourceSale          = "sale"
	ResourcePurchasesList = "purchases-list"
	ResourcePurchase      = "purchase"
	ResourcePayblesList   = "paybles-list"
	ResourcePayble        = "payble"
	ResourceRecivesList   = "recives-list"
	ResourceRecive        = "recive"

	ResourceCashFlowMonthly = "cash-flow-monthly"
	ResourceCashFlowDaily   = "cash-flow-daily"
	ResourceBalance         = "balance"
	ResourcePaybleCounts    = "payble-counts"
	ResourceReciveCounts    = "recive-counts"
)

// Effect efeito de uma escrita sobre o cache: recursos invalidados por inteiro
// e, quando aplicável, o recurso cuja chave de detalhe do registro alvo também
// fica stale.
type Effect struct {
	Resources []string
	Detail    string
}

// effects é a tabela explícita de invalidação cruzada. Vendas e compras
// invalidam também os títulos que o backend gera junto (venda→recebível,
// compra→pagável); os demais cadastros invalidam só a própria lista.
var effects = map[string]Effect{
	// comerciais: acoplamento cruzado com os títulos derivados
	"sale-create":     {Resources: []string{ResourceSalesList, ResourceRecivesList}},
	"sale-update":     {Resources: []string{ResourceSalesList, ResourceRecivesList}},
	"sale-delete":     {Resources: []string{ResourceSalesList, ResourceRecivesList}},
	"purchase-create": {Resources: []string{ResourcePurchasesList, ResourcePayblesList}},
	"purchase-update": {Resources: []string{ResourcePurchasesList, ResourcePayblesList}},
	"purchase-delete": {Resources: []string{ResourcePurchasesList, ResourcePayblesList}},

	// títulos: lista mais o detalhe do registro alterado
	"payable-write": {Resources: []string{ResourcePayblesList}, Detail: ResourcePayble},
	"recive-write":  {Resources: []string{ResourceRecivesList}, Detail: ResourceRecive},

	// cadastros: apenas a própria lista (updates também o próprio detalhe)
	"person-create":   {Resources: []string{ResourcePersonsList}},
	"person-update":   {Resources: []string{ResourcePersonsList}, Detail: ResourcePerson},
	"person-delete":   {Resources: []string{ResourcePersonsList}},
	"product-create":  {Resources: []string{ResourceProductsList}},
	"product-update":  {Resources: []string{ResourceProductsList}, Detail: ResourceProduct},
	"product-delete":  {Resources: []string{ResourceProductsList}},
	"employee-create": {Resources: []string{ResourceEmployeesList}},
	"employee-update": {Resources: []string{ResourceEmployeesList}, Detail: ResourceEmployee},
	"employee-delete": {Resources: []string{ResourceEmployeesList}},
	"entry-create":    {Resources: []string{ResourceEntriesList}},
	"entry-update":    {Resources: []string{ResourceEntriesList}, Detail: ResourceEntry},
	"entry-delete":    {Resources: []string{ResourceEntriesList}},
}

// EffectOf devolve o efeito declarado de uma operação de escrita.
// Operação desconhecida não invalida nada.
func EffectOf(op string) Effect {
	return effects[op]
}
