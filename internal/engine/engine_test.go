package engine

import (
	"retail-dashboard/internal/models"
)

// scenarioRecords is the worked example used across the engine tests:
// agent A sells twice in January, agent B has a target but only a
// return. Target dedup must yield 1500 (1000 once for A, 500 once for
// B), never 2000.
func scenarioRecords() []models.TransactionRecord {
	return []models.TransactionRecord{
		{
			Location:                "JKT-01",
			SiteName:                "Grand Indonesia",
			SubRegion:               "DKI 01",
			RegionalArea:            "Jakarta",
			InvoiceNumber:           "INV-001",
			SKUNumber:               "SG-BP-3001",
			SKUName:                 "Summit Ridgeline 30L Daypack",
			MaterialTypeDesc:        "Finished Goods",
			MGH1:                    "SUMMIT GEAR",
			MGH2:                    "OUTDOOR & ADVENTURE",
			MGH3:                    "CARRY GOODS",
			MGH4:                    "DAYPACK",
			ProductType:             "Daypack",
			Qty:                     2,
			UnitPrice:               250,
			NettSales:               450,
			GrossSales:              500,
			EmployeeNumber:          "E-100",
			EmployeeName:            "A",
			Position:                "Retail Assistant",
			SalesTargetUniq:         1000,
			ChannelName:             "Retail",
			DistributionChannelDesc: "Own Store",
			Status:                  "delivered",
			ShippingDate:            "2025-01-10 09:15:00",
		},
		{
			Location:                "JKT-01",
			SiteName:                "Grand Indonesia",
			SubRegion:               "DKI 01",
			RegionalArea:            "Jakarta",
			InvoiceNumber:           "INV-002",
			SKUNumber:               "SG-TS-1791",
			SKUName:                 "Summit Basecamp Tee",
			MaterialTypeDesc:        "Finished Goods",
			MGH1:                    "SUMMIT GEAR",
			MGH2:                    "OUTDOOR & ADVENTURE",
			MGH3:                    "CLOTHING",
			MGH4:                    "T-SHIRT",
			ProductType:             "T-Shirt",
			Qty:                     1,
			UnitPrice:               200,
			NettSales:               180,
			GrossSales:              200,
			EmployeeNumber:          "E-100",
			EmployeeName:            "A",
			Position:                "Retail Assistant",
			SalesTargetUniq:         1000,
			ChannelName:             "Retail",
			DistributionChannelDesc: "Own Store",
			Status:                  "delivered",
			ShippingDate:            "2025-01-12 14:30:00",
		},
		{
			Location:                "JKT-01",
			SiteName:                "Grand Indonesia",
			SubRegion:               "DKI 01",
			RegionalArea:            "Jakarta",
			InvoiceNumber:           "INV-003",
			SKUNumber:               "SG-SD-2901",
			SKUName:                 "Summit Breeze Comfort Sandals",
			MaterialTypeDesc:        "Finished Goods",
			MGH1:                    "SUMMIT GEAR",
			MGH2:                    "OUTDOOR & ADVENTURE",
			MGH3:                    "SHOES",
			MGH4:                    "SANDALS",
			ProductType:             "Sandals",
			Qty:                     -1,
			UnitPrice:               100,
			NettSales:               -90,
			GrossSales:              -100,
			EmployeeNumber:          "E-200",
			EmployeeName:            "B",
			Position:                "Retail Assistant",
			SalesTargetUniq:         500,
			ChannelName:             "Retail",
			DistributionChannelDesc: "Own Store",
			Status:                  "returned",
			ShippingDate:            "2025-01-15 11:00:00",
		},
	}
}

// saleRecord is a compact builder for tests that only care about a few
// fields.
func saleRecord(employee, day string, qty, gross, targetUniq float64) models.TransactionRecord {
	return models.TransactionRecord{
		SubRegion:       "DKI 01",
		RegionalArea:    "Jakarta",
		SiteName:        "Grand Indonesia",
		InvoiceNumber:   "INV-" + employee + "-" + day,
		SKUName:         "SKU-" + employee,
		EmployeeNumber:  "E-" + employee,
		EmployeeName:    employee,
		Qty:             qty,
		GrossSales:      gross,
		NettSales:       gross,
		SalesTargetUniq: targetUniq,
		ShippingDate:    day + " 10:00:00",
	}
}
