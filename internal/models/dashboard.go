package models

// TrendPoint is one bucket of a daily, monthly or yearly sales trend.
type TrendPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Target float64 `json:"target"`
}

// AgentPerformance ranks one retail agent by revenue for the filtered period.
type AgentPerformance struct {
	Name        string  `json:"name"`
	Revenue     float64 `json:"revenue"`
	Target      float64 `json:"target"`
	Achievement float64 `json:"achievement"`
}

// ProductSummary aggregates one SKU across the filtered positive sales.
type ProductSummary struct {
	SKUName          string  `json:"sku_name"`
	Category         string  `json:"category"`
	ProductType      string  `json:"product_type"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalQty         float64 `json:"total_qty"`
	TransactionCount int     `json:"transaction_count"`
}

// ProductInsights holds the three ranked product views. A SKU may appear
// in more than one view at once.
type ProductInsights struct {
	TopByRevenue  []ProductSummary `json:"top_by_revenue"`
	TopByQuantity []ProductSummary `json:"top_by_quantity"`
	SlowMoving    []ProductSummary `json:"slow_moving"`
}

// MonthAchievement is one cell of the agent monthly achievement matrix.
type MonthAchievement struct {
	Month       string  `json:"month"`
	Sales       float64 `json:"sales"`
	Target      float64 `json:"target"`
	Achievement float64 `json:"achievement"`
}

// AgentMonthly is one agent's row in the reporting-quarter matrix.
type AgentMonthly struct {
	Name   string             `json:"name"`
	Months []MonthAchievement `json:"months"`
}

// PreviousPeriod is the KPI snapshot of the equal-duration window
// immediately preceding the current one.
type PreviousPeriod struct {
	Sales            float64 `json:"sales"`
	Target           float64 `json:"target"`
	Achievement      float64 `json:"achievement"`
	AvgItemsPerOrder float64 `json:"avg_items_per_order"`
	AvgOrderValue    float64 `json:"avg_order_value"`
	RevenuePerAgent  float64 `json:"revenue_per_agent"`
}

// TargetProgress projects end-of-month sales from the pace so far.
type TargetProgress struct {
	DaysElapsed          int     `json:"days_elapsed"`
	DaysTotal            int     `json:"days_total"`
	DaysRemaining        int     `json:"days_remaining"`
	DailySalesRate       float64 `json:"daily_sales_rate"`
	RequiredDailyRate    float64 `json:"required_daily_rate"`
	ProjectedSales       float64 `json:"projected_sales"`
	ProjectedAchievement float64 `json:"projected_achievement"`
	IsOnTrack            bool    `json:"is_on_track"`
}

// FilterOptions is the cascading option catalogue: for each facet, the
// values still valid given the facets chosen before it.
type FilterOptions struct {
	RegionalArea        []string `json:"regional_area"`
	SubRegion           []string `json:"sub_region"`
	DistributionChannel []string `json:"distribution_channel"`
	SiteName            []string `json:"site_name"`
	MaterialType        []string `json:"material_type"`
	ProductType         []string `json:"product_type"`
	MGH1                []string `json:"mgh1"`
	MGH2                []string `json:"mgh2"`
	MGH3                []string `json:"mgh3"`
	MGH4                []string `json:"mgh4"`
	Gift                []string `json:"gift"`
	Bogo                []string `json:"bogo"`
	Employee            []string `json:"employee"`
}

// TransactionDetail is one row of the audit listing: every filtered row,
// returns included, with absolute scaled amounts.
type TransactionDetail struct {
	Location      string  `json:"location"`
	SiteName      string  `json:"site_name"`
	RegionalArea  string  `json:"regional_area"`
	InvoiceNumber string  `json:"invoice_number"`
	SKUName       string  `json:"sku_name"`
	Qty           float64 `json:"qty"`
	UnitPrice     float64 `json:"unit_price"`
	NettSales     float64 `json:"nett_sales"`
	GrossSales    float64 `json:"gross_sales"`
	EmployeeName  string  `json:"employee_name"`
	Position      string  `json:"position"`
	ChannelName   string  `json:"channel_name"`
	Status        string  `json:"status"`
	Category      string  `json:"category"`
	ProductType   string  `json:"product_type"`
}

// DashboardModel is the full derived dashboard: a pure function of
// (record set, scope, filter spec). Instances are never mutated after
// construction; every request recomputes a fresh one.
type DashboardModel struct {
	Sales            float64 `json:"sales"`
	Target           float64 `json:"target"`
	Achievement      float64 `json:"achievement"`
	AvgItemsPerOrder float64 `json:"avg_items_per_order"`
	AvgOrderValue    float64 `json:"avg_order_value"`
	RevenuePerAgent  float64 `json:"revenue_per_agent"`

	SalesTrendDaily   []TrendPoint `json:"sales_trend_daily"`
	SalesTrendMonthly []TrendPoint `json:"sales_trend_monthly"`
	SalesTrendYearly  []TrendPoint `json:"sales_trend_yearly"`

	AgentPerformance   []AgentPerformance  `json:"agent_performance"`
	ProductInsights    ProductInsights     `json:"product_insights"`
	MonthlyAchievement []AgentMonthly      `json:"monthly_achievement"`
	Transactions       []TransactionDetail `json:"transactions"`
	FilterOptions      FilterOptions       `json:"filter_options"`
	PreviousPeriod     PreviousPeriod      `json:"previous_period"`
	TargetProgress     TargetProgress      `json:"target_progress"`
}
