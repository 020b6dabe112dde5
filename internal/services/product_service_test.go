package services_test

import (
	"context"
	"fmt"
	"testing"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var firstPage = models.PageRequest{Page: 0, Size: 9}

func validInput() models.ProductInput {
	return models.ProductInput{
		Name:          "Matcha KitKat",
		Description:   "Green tea wafers",
		Price:         500,
		Rating:        4.5,
		CityID:        1,
		SubcategoryID: 1,
		CurrencyID:    1,
		TagIDs:        []uint{2, 1},
	}
}

func TestProductService_FindProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	products := models.NewPage([]models.Product{
		{ID: 1, Name: "Pocky", City: models.City{Name: "Tokyo"}},
	}, firstPage, 1)

	filter := models.FilterOptions{CityIDs: []uint{2, 1, 2}}
	mockRepo.On("FindByFilter", ctx,
		models.FilterOptions{CityIDs: []uint{1, 2}},
		models.SortCriteria{Field: models.SortByPrice, Ascending: true},
		firstPage,
	).Return(products, nil).Once()

	page, err := service.FindProducts(ctx, firstPage, filter, models.SortOptions{SortBy: "price", SortDirection: "asc"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Tokyo", page.Content[0].CityName)
	mockRepo.AssertExpectations(t)
}

func TestProductService_FindProductsRejectsBeforeQuerying(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	_, err := service.FindProducts(ctx, models.PageRequest{Page: -1, Size: 9}, models.FilterOptions{}, models.SortOptions{})
	assert.ErrorIs(t, err, models.ErrInvalidPageRequest)

	_, err = service.FindProducts(ctx, firstPage, models.FilterOptions{}, models.SortOptions{SortBy: "name"})
	assert.ErrorIs(t, err, models.ErrUnknownSortField)

	_, err = service.FindProducts(ctx, firstPage, models.FilterOptions{}, models.SortOptions{SortDirection: "sideways"})
	assert.ErrorIs(t, err, models.ErrInvalidSortDirection)

	_, err = service.FindProducts(ctx, firstPage, models.FilterOptions{CityIDs: []uint{1, 3}}, models.SortOptions{})
	assert.ErrorIs(t, err, models.ErrInconsistentCityFilter)

	_, err = service.FindProducts(ctx, firstPage, models.FilterOptions{TagIDs: []uint{99}}, models.SortOptions{})
	assert.ErrorIs(t, err, models.ErrTagNotFound)

	mockRepo.AssertNotCalled(t, "FindByFilter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_SearchProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	mockRepo.On("FindByPartialName", ctx, "Kit", models.DefaultSort, firstPage).
		Return(models.NewPage([]models.Product{{ID: 3, Name: "KitKat"}}, firstPage, 1), nil).Once()

	page, err := service.SearchProducts(ctx, "Kit", firstPage, models.SortOptions{})
	require.NoError(t, err)
	assert.Equal(t, "KitKat", page.Content[0].Name)

	_, err = service.SearchProducts(ctx, "   ", firstPage, models.SortOptions{})
	assert.ErrorIs(t, err, models.ErrBlankSearchName)

	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	expected := &models.Product{ID: 1, Name: "Pocky"}
	mockRepo.On("GetByID", ctx, uint(1)).Return(expected, nil).Once()
	product, err := service.GetProduct(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, fmt.Errorf("%w: id 99", models.ErrProductNotFound)).Once()
	product, err = service.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.MemberID == 7 && p.Name == "Matcha KitKat" && assert.ObjectsAreEqual([]uint{1, 2}, p.TagIDs())
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = 11
	}).Return(nil).Once()
	mockRepo.On("GetByID", ctx, uint(11)).Return(&models.Product{ID: 11, MemberID: 7, Name: "Matcha KitKat"}, nil).Once()

	product, err := service.CreateProduct(ctx, 7, validInput())
	require.NoError(t, err)
	assert.Equal(t, uint(11), product.ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductValidation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ProductInput)
		wantErr error
	}{
		{"blank name", func(in *models.ProductInput) { in.Name = "" }, models.ErrInvalidProduct},
		{"negative price", func(in *models.ProductInput) { in.Price = -1 }, models.ErrInvalidProduct},
		{"rating off step", func(in *models.ProductInput) { in.Rating = 3.3 }, models.ErrInvalidRating},
		{"unknown city", func(in *models.ProductInput) { in.CityID = 99 }, models.ErrCityNotFound},
		{"unknown subcategory", func(in *models.ProductInput) { in.SubcategoryID = 99 }, models.ErrSubcategoryNotFound},
		{"unknown currency", func(in *models.ProductInput) { in.CurrencyID = 99 }, models.ErrCurrencyNotFound},
		{"unknown tag", func(in *models.ProductInput) { in.TagIDs = []uint{1, 99} }, models.ErrTagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := service.CreateProduct(ctx, 7, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, uint(5)).Return(&models.Product{ID: 5, MemberID: 7, LikeCount: 4}, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 5 && p.Name == "Matcha KitKat" && p.LikeCount == 4
	})).Return(nil).Once()
	mockRepo.On("GetByID", ctx, uint(5)).Return(&models.Product{ID: 5, MemberID: 7, Name: "Matcha KitKat"}, nil).Once()

	product, err := service.UpdateProduct(ctx, 7, 5, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Matcha KitKat", product.Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductOwnerMismatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, uint(5)).Return(&models.Product{ID: 5, MemberID: 7}, nil).Once()

	_, err := service.UpdateProduct(ctx, 8, 5, validInput())
	assert.ErrorIs(t, err, models.ErrProductMemberMismatch)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, newReferences())
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, uint(5)).Return(&models.Product{ID: 5, MemberID: 7}, nil).Twice()
	mockRepo.On("Delete", ctx, uint(5)).Return(nil).Once()

	assert.NoError(t, service.DeleteProduct(ctx, 7, 5))
	assert.ErrorIs(t, service.DeleteProduct(ctx, 8, 5), models.ErrProductMemberMismatch)
	mockRepo.AssertExpectations(t)
}
