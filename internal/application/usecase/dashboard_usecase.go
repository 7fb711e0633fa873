package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
	"github.com/jhoicas/portal-isp-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del dashboard según el rol.
type DashboardUseCase struct {
	clients repository.ClientRepository
	sales   repository.SalesRepository
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(clients repository.ClientRepository, sales repository.SalesRepository) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, sales: sales, now: time.Now}
}

// Summary devuelve el resumen correspondiente al rol del usuario.
func (uc *DashboardUseCase) Summary(userID string, role entity.Role) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{Role: string(role)}

	switch role {
	case entity.RoleClient:
		c, err := uc.clients.GetByID(userID)
		if err != nil {
			return nil, err
		}
		out.Client = &dto.ClientDashboard{
			Balance:        c.Balance,
			CurrentPackage: dto.ToPackageResponse(c.CurrentPackage),
			TopUpCount:     len(c.TopUps),
		}

	case entity.RoleSales:
		s, err := uc.sales.GetByID(userID)
		if err != nil {
			return nil, err
		}
		sd := &dto.SalesDashboard{AssignedClients: len(s.Clients)}
		if s.Performance != nil {
			sd.Performance = &dto.PerformanceResponse{
				ClientsRegistered: s.Performance.ClientsRegistered,
				SalesMade:         s.Performance.SalesMade,
			}
		}
		out.Sales = sd

	case entity.RoleAdmin:
		clients, err := uc.clients.List()
		if err != nil {
			return nil, err
		}
		salesTeam, err := uc.sales.List()
		if err != nil {
			return nil, err
		}
		now := uc.now()
		ad := &dto.AdminDashboard{
			TotalClients: len(clients),
			TotalSales:   len(salesTeam),
			TotalBalance: decimal.Zero,
		}
		for _, c := range clients {
			ad.TotalBalance = ad.TotalBalance.Add(c.Balance)
			if c.CurrentPackage != nil {
				if c.CurrentPackage.Expired(now) {
					ad.ExpiredPackages++
				} else {
					ad.ActivePackages++
				}
			}
		}
		out.Admin = ad
	}

	return out, nil
}
