package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen según el rol de quien consulta. Solo se llena la
// sección del rol correspondiente.
type DashboardResponse struct {
	Role   string           `json:"role"`
	Client *ClientDashboard `json:"client,omitempty"`
	Sales  *SalesDashboard  `json:"sales,omitempty"`
	Admin  *AdminDashboard  `json:"admin,omitempty"`
}

// ClientDashboard resumen para un cliente.
type ClientDashboard struct {
	Balance        decimal.Decimal  `json:"balance"`
	CurrentPackage *PackageResponse `json:"current_package,omitempty"`
	TopUpCount     int              `json:"top_up_count"`
}

// SalesDashboard resumen para un asesor.
type SalesDashboard struct {
	AssignedClients int                  `json:"assigned_clients"`
	Performance     *PerformanceResponse `json:"performance,omitempty"`
}

// AdminDashboard resumen global para el admin.
type AdminDashboard struct {
	TotalClients    int             `json:"total_clients"`
	TotalSales      int             `json:"total_sales"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	ActivePackages  int             `json:"active_packages"`
	ExpiredPackages int             `json:"expired_packages"`
}
