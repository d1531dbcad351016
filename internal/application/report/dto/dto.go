package dto

import (
	"time"

	"github.com/gestio-app/gestio/internal/domain/report"
)

type ProductSummaryDTO struct {
	ProductID     uint   `json:"product_id"`
	SID           string `json:"sid"`
	Name          string `json:"name"`
	UnitPrice     string `json:"unit_price"`
	ActiveClients int    `json:"active_clients"`
	Revenue       string `json:"revenue"`
}

type SaleDTO struct {
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Commission  string `json:"commission"`
}

type SellerReportDTO struct {
	SellerID       uint      `json:"seller_id"`
	SID            string    `json:"sid"`
	Name           string    `json:"name"`
	CommissionRate string    `json:"commission_rate"`
	TotalSales     int       `json:"total_sales"`
	Revenue        string    `json:"revenue"`
	Commission     string    `json:"commission"`
	Sales          []SaleDTO `json:"sales"`
}

type GlobalSummaryDTO struct {
	TotalRevenue    string `json:"total_revenue"`
	TotalCommission string `json:"total_commission"`
	SaleCount       int    `json:"sale_count"`
	AverageSale     string `json:"average_sale"`
}

type ExpiringClientDTO struct {
	ClientID        uint      `json:"client_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	SubscriptionEnd time.Time `json:"subscription_end"`
	Status          string    `json:"status"`
	DaysLeft        int       `json:"days_left"`
}

type DashboardDTO struct {
	TotalClients     int                 `json:"total_clients"`
	ActiveClients    int                 `json:"active_clients"`
	EstimatedRevenue string              `json:"estimated_revenue"`
	Summary          GlobalSummaryDTO    `json:"summary"`
	ExpiringSoon     []ExpiringClientDTO `json:"expiring_soon"`
}

func ToProductSummaryDTOs(summaries []report.ProductSummary) []ProductSummaryDTO {
	dtos := make([]ProductSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, ProductSummaryDTO{
			ProductID:     s.ProductID,
			SID:           s.SID,
			Name:          s.Name,
			UnitPrice:     s.UnitPrice.StringFixed(2),
			ActiveClients: s.ActiveClients,
			Revenue:       s.Revenue.StringFixed(2),
		})
	}
	return dtos
}

func ToSellerReportDTOs(reports []report.SellerReport) []SellerReportDTO {
	dtos := make([]SellerReportDTO, 0, len(reports))
	for _, r := range reports {
		sales := make([]SaleDTO, 0, len(r.Sales))
		for _, s := range r.Sales {
			sales = append(sales, SaleDTO{
				ClientID:    s.ClientID,
				ClientName:  s.ClientName,
				ProductName: s.ProductName,
				Price:       s.Price.StringFixed(2),
				Commission:  s.Commission.StringFixed(2),
			})
		}
		dtos = append(dtos, SellerReportDTO{
			SellerID:       r.SellerID,
			SID:            r.SID,
			Name:           r.Name,
			CommissionRate: r.CommissionRate.String(),
			TotalSales:     len(r.Sales),
			Revenue:        r.Revenue.StringFixed(2),
			Commission:     r.Commission.StringFixed(2),
			Sales:          sales,
		})
	}
	return dtos
}

func ToGlobalSummaryDTO(s report.GlobalSummary) GlobalSummaryDTO {
	return GlobalSummaryDTO{
		TotalRevenue:    s.TotalRevenue.StringFixed(2),
		TotalCommission: s.TotalCommission.StringFixed(2),
		SaleCount:       s.SaleCount,
		AverageSale:     s.AverageSale.StringFixed(2),
	}
}

func ToExpiringClientDTOs(expiring []report.ExpiringClient) []ExpiringClientDTO {
	dtos := make([]ExpiringClientDTO, 0, len(expiring))
	for _, e := range expiring {
		dtos = append(dtos, ExpiringClientDTO{
			ClientID:        e.Client.ID(),
			Name:            e.Client.FullName(),
			Email:           e.Client.Email(),
			SubscriptionEnd: e.Client.Subscription().End(),
			Status:          e.Status.String(),
			DaysLeft:        e.Remaining.Days,
		})
	}
	return dtos
}
