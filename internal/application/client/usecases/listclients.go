package usecases

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gestio-app/gestio/internal/application/client/dto"
	"github.com/gestio-app/gestio/internal/domain/catalog"
	"github.com/gestio-app/gestio/internal/domain/client"
	apperrors "github.com/gestio-app/gestio/internal/shared/errors"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// Sort orders accepted by the client list.
const (
	SortExpiryAsc  = "expiry_asc"
	SortExpiryDesc = "expiry_desc"
	SortNameAsc    = "name_asc"
)

type ListClientsQuery struct {
	Search           string
	ProductID        *uint
	SellerID         *uint
	SubscriptionType string
	Sort             string
	Page             int
	PageSize         int
}

type ListClientsResult struct {
	Clients []*dto.ClientDTO
	Total   int64
}

type ListClientsUseCase struct {
	clientRepo  client.Repository
	productRepo catalog.ProductRepository
	sellerRepo  catalog.SellerRepository
	logger      logger.Interface
	collator    *collate.Collator
}

func NewListClientsUseCase(
	clientRepo client.Repository,
	productRepo catalog.ProductRepository,
	sellerRepo catalog.SellerRepository,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		logger:      logger,
		collator:    collate.New(language.Italian, collate.IgnoreCase),
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	clients, err := uc.clientRepo.List(ctx, client.Filter{
		Search:           query.Search,
		ProductID:        query.ProductID,
		SellerID:         query.SellerID,
		SubscriptionType: query.SubscriptionType,
	})
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, apperrors.NewInternalError("failed to list clients")
	}

	uc.sortClients(clients, query.Sort)

	total := len(clients)
	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	start, end := utils.ApplyPagination(total, pagination.Page, pagination.PageSize)
	clients = clients[start:end]

	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, apperrors.NewInternalError("failed to list products")
	}
	sellers, err := uc.sellerRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sellers", "error", err)
		return nil, apperrors.NewInternalError("failed to list sellers")
	}
	productIdx := make(map[uint]*catalog.Product, len(products))
	for _, p := range products {
		productIdx[p.ID()] = p
	}
	sellerIdx := make(map[uint]*catalog.Seller, len(sellers))
	for _, s := range sellers {
		sellerIdx[s.ID()] = s
	}

	now := time.Now().UTC()
	dtos := make([]*dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		var product *catalog.Product
		var seller *catalog.Seller
		if c.ProductID() != nil {
			product = productIdx[*c.ProductID()]
		}
		if c.SellerID() != nil {
			seller = sellerIdx[*c.SellerID()]
		}
		dtos = append(dtos, dto.ToClientDTO(c, product, seller, now))
	}

	return &ListClientsResult{Clients: dtos, Total: int64(total)}, nil
}

// sortClients orders the result in memory. Name ordering uses Italian
// collation so accented surnames sort where an operator expects them.
func (uc *ListClientsUseCase) sortClients(clients []*client.Client, order string) {
	switch order {
	case SortNameAsc:
		sort.SliceStable(clients, func(i, j int) bool {
			a := clients[i].Surname() + " " + clients[i].Name()
			b := clients[j].Surname() + " " + clients[j].Name()
			return uc.collator.CompareString(a, b) < 0
		})
	case SortExpiryDesc:
		sort.SliceStable(clients, func(i, j int) bool {
			return clients[i].Subscription().End().After(clients[j].Subscription().End())
		})
	default:
		sort.SliceStable(clients, func(i, j int) bool {
			return clients[i].Subscription().End().Before(clients[j].Subscription().End())
		})
	}
}
