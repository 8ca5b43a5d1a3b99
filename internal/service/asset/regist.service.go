package asset

import (
	"context"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/storage"
)

type Service struct {
	ctx    context.Context
	assets storage.AssetStore
	prefix string
}

type IService interface {
	ResolveURL(ctx context.Context, key string) *types.Response
}

func NewService(ctx context.Context, assets storage.AssetStore, prefix string) IService {
	return &Service{
		ctx:    ctx,
		assets: assets,
		prefix: prefix,
	}
}

type URLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
