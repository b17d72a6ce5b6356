package services

import (
	"encoding/csv"
	"strconv"
	"strings"

	"retail-dashboard/internal/models"
)

// Column layout of the sales flat file. The file carries more columns
// than the dashboard reads; the gaps are intentional.
const (
	colLocation         = 0
	colSiteName         = 1
	colSubRegion        = 2
	colRegionalArea     = 3
	colInvoiceNumber    = 4
	colOrderNumber      = 5
	colSKUNumber        = 8
	colSKUName          = 9
	colQty              = 10
	colUnitPrice        = 11
	colNettSales        = 13
	colGrossSales       = 14
	colEmployeeNumber   = 20
	colEmployeeName     = 21
	colSalesTarget      = 22
	colSalesTargetUniq  = 23
	colPosition         = 24
	colChannelName      = 27
	colStatus           = 28
	colDistChannelDesc  = 33
	colShippingDate     = 34
	colMaterialTypeDesc = 35
	colMaterialTypeCode = 36
	colMGH1             = 37
	colMGH2             = 38
	colMGH3             = 39
	colMGH4             = 40
	colProductType      = 41
	colIsBogo           = 43
	colIsGift           = 44
)

// parseFields splits one physical line into CSV fields, honoring quoted
// fields that contain the delimiter and doubled-quote escapes. The file
// is line-oriented; fields never span lines.
func parseFields(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.Read()
}

// recordFromFields builds a TransactionRecord from raw fields. Missing
// trailing fields read as empty, unparsable numerics as 0; neither is
// an error.
func recordFromFields(fields []string) models.TransactionRecord {
	return models.TransactionRecord{
		Location:     stringField(fields, colLocation),
		SiteName:     stringField(fields, colSiteName),
		SubRegion:    stringField(fields, colSubRegion),
		RegionalArea: stringField(fields, colRegionalArea),

		InvoiceNumber: stringField(fields, colInvoiceNumber),
		OrderNumber:   stringField(fields, colOrderNumber),

		SKUNumber:        stringField(fields, colSKUNumber),
		SKUName:          stringField(fields, colSKUName),
		MaterialTypeCode: stringField(fields, colMaterialTypeCode),
		MaterialTypeDesc: stringField(fields, colMaterialTypeDesc),
		MGH1:             stringField(fields, colMGH1),
		MGH2:             stringField(fields, colMGH2),
		MGH3:             stringField(fields, colMGH3),
		MGH4:             stringField(fields, colMGH4),
		ProductType:      stringField(fields, colProductType),
		IsGift:           stringField(fields, colIsGift),
		IsBogo:           stringField(fields, colIsBogo),

		Qty:        numericField(fields, colQty),
		UnitPrice:  numericField(fields, colUnitPrice),
		NettSales:  numericField(fields, colNettSales),
		GrossSales: numericField(fields, colGrossSales),

		EmployeeNumber: stringField(fields, colEmployeeNumber),
		EmployeeName:   stringField(fields, colEmployeeName),
		Position:       stringField(fields, colPosition),

		SalesTarget:     numericField(fields, colSalesTarget),
		SalesTargetUniq: numericField(fields, colSalesTargetUniq),

		ChannelName:             stringField(fields, colChannelName),
		DistributionChannelDesc: stringField(fields, colDistChannelDesc),
		Status:                  stringField(fields, colStatus),
		ShippingDate:            stringField(fields, colShippingDate),
	}
}

func stringField(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func numericField(fields []string, i int) float64 {
	v, err := strconv.ParseFloat(stringField(fields, i), 64)
	if err != nil {
		return 0
	}
	return v
}
