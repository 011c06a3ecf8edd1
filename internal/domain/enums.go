package domain

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatuses is the canonical set of accepted invoice status strings.
var ValidInvoiceStatuses = map[string]bool{
	"pending": true, "paid": true, "overdue": true, "cancelled": true,
}

type ExpenseCategory string

const (
	CategoryFood      ExpenseCategory = "Maistas"
	CategoryTransport ExpenseCategory = "Transportas"
	CategoryRent      ExpenseCategory = "Nuoma"
	CategoryUtilities ExpenseCategory = "Komunaliniai"
	CategoryOffice    ExpenseCategory = "Biuras"
	CategoryServices  ExpenseCategory = "Paslaugos"
	CategoryOther     ExpenseCategory = "Kita"
)

// ExpenseCategories lists all categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood, CategoryTransport, CategoryRent, CategoryUtilities,
	CategoryOffice, CategoryServices, CategoryOther,
}

// ValidExpenseCategories is the canonical set of accepted category strings.
var ValidExpenseCategories = map[string]bool{
	"Maistas": true, "Transportas": true, "Nuoma": true, "Komunaliniai": true,
	"Biuras": true, "Paslaugos": true, "Kita": true,
}
