package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// RecipeServiceClient — клиент RecipeService поверх JSON-кодека.
type RecipeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecipeServiceClient(cc grpc.ClientConnInterface) *RecipeServiceClient {
	return &RecipeServiceClient{cc: cc}
}

func (c *RecipeServiceClient) ListRecipes(ctx context.Context, in *ListRecipesRequest, opts ...grpc.CallOption) (*ListRecipesResponse, error) {
	out := new(ListRecipesResponse)
	if err := c.invoke(ctx, "ListRecipes", in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *RecipeServiceClient) GetRecipe(ctx context.Context, in *GetRecipeRequest, opts ...grpc.CallOption) (*GetRecipeResponse, error) {
	out := new(GetRecipeResponse)
	if err := c.invoke(ctx, "GetRecipe", in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *RecipeServiceClient) ListFilters(ctx context.Context, in *ListFiltersRequest, opts ...grpc.CallOption) (*ListFiltersResponse, error) {
	out := new(ListFiltersResponse)
	if err := c.invoke(ctx, "ListFilters", in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *RecipeServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}
