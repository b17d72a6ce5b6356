package models

import "strings"

// TransactionRecord is one line item of an order as it appears in the
// sales flat file. Negative Qty marks a return/reversal; GrossSales and
// NettSales carry the same sign as Qty.
type TransactionRecord struct {
	Location     string
	SiteName     string
	SubRegion    string
	RegionalArea string

	InvoiceNumber string
	OrderNumber   string

	SKUNumber        string
	SKUName          string
	MaterialTypeCode string
	MaterialTypeDesc string
	MGH1             string
	MGH2             string
	MGH3             string
	MGH4             string
	ProductType      string
	IsGift           string
	IsBogo           string

	Qty        float64
	UnitPrice  float64
	NettSales  float64
	GrossSales float64

	EmployeeNumber string
	EmployeeName   string
	Position       string

	// SalesTargetUniq is the employee's monthly target, attached
	// redundantly to every row of that employee. Aggregations must count
	// it once per employee per month, never per row.
	SalesTarget     float64
	SalesTargetUniq float64

	ChannelName             string
	DistributionChannelDesc string
	Status                  string
	ShippingDate            string // "2006-01-02 15:04:05"; day part is what matters
}

// ShipDay returns the zero-padded ISO date part of ShippingDate, or ""
// when the record carries no date. Lexicographic comparison of these
// values is chronological.
func (r TransactionRecord) ShipDay() string {
	if r.ShippingDate == "" {
		return ""
	}
	if i := strings.IndexByte(r.ShippingDate, ' '); i >= 0 {
		return r.ShippingDate[:i]
	}
	return r.ShippingDate
}

// ShipMonth returns the "2006-01" prefix of the shipping date, or "".
func (r TransactionRecord) ShipMonth() string {
	day := r.ShipDay()
	if len(day) < 7 {
		return ""
	}
	return day[:7]
}

// ShipYear returns the "2006" prefix of the shipping date, or "".
func (r TransactionRecord) ShipYear() string {
	day := r.ShipDay()
	if len(day) < 4 {
		return ""
	}
	return day[:4]
}
