package repository

import (
	"context"

	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type NFTTransferRepository interface {
	Create(context.Context, *entity.NFTTransfer) error
	GetByAddresses(ctx context.Context, addresses []string) ([]entity.NFTTransfer, error)
	GetByRunID(ctx context.Context, runID string) ([]entity.NFTTransfer, error)
	GetAll(context.Context) ([]entity.NFTTransfer, error)
}

type nftTransferRepository struct{}

func NewNFTTransferRepository() *nftTransferRepository {
	return &nftTransferRepository{}
}

// Create inserts the transfer. A second transfer to the same address is
// ignored rather than failing the run.
func (r *nftTransferRepository) Create(ctx context.Context, data *entity.NFTTransfer) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "address"}}, DoNothing: true}).
		Create(data).Error
}

func (r *nftTransferRepository) GetByAddresses(
	ctx context.Context, addresses []string,
) ([]entity.NFTTransfer, error) {
	result := []entity.NFTTransfer{}
	if len(addresses) == 0 {
		return result, nil
	}

	if err := xcontext.DB(ctx).Find(&result, "address IN (?)", addresses).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *nftTransferRepository) GetByRunID(ctx context.Context, runID string) ([]entity.NFTTransfer, error) {
	result := []entity.NFTTransfer{}
	if err := xcontext.DB(ctx).
		Where("run_id=?", runID).
		Order("created_at ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *nftTransferRepository) GetAll(ctx context.Context) ([]entity.NFTTransfer, error) {
	result := []entity.NFTTransfer{}
	if err := xcontext.DB(ctx).Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
