// grpc содержит реализацию gRPC-эндпоинтов RecipeService.
//
// Сервис описан вручную (grpc.ServiceDesc) и передаёт сообщения в JSON
// (content-subtype "json", см. codec.go).
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в коды gRPC:
//   - ErrInvalidArgument, ErrInvalidCursor -> codes.InvalidArgument;
//   - ErrNotFound -> codes.NotFound;
//   - отмена/дедлайн контекста -> codes.Canceled / codes.DeadlineExceeded;
//   - иные ошибки -> codes.Internal с единым безопасным сообщением.
package grpc

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-recipe-catalog/internal/models"
	"github.com/pribylovaa/go-recipe-catalog/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "recipes.v1.RecipeService"

// RecipeServiceServer — серверная сторона RecipeService.
type RecipeServiceServer interface {
	ListRecipes(ctx context.Context, req *ListRecipesRequest) (*ListRecipesResponse, error)
	GetRecipe(ctx context.Context, req *GetRecipeRequest) (*GetRecipeResponse, error)
	ListFilters(ctx context.Context, req *ListFiltersRequest) (*ListFiltersResponse, error)
}

// RecipeServiceDesc — описание сервиса для grpc.Server.RegisterService.
var RecipeServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*RecipeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRecipes", Handler: listRecipesHandler},
		{MethodName: "GetRecipe", Handler: getRecipeHandler},
		{MethodName: "ListFilters", Handler: listFiltersHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterRecipeServiceServer регистрирует реализацию на сервере.
func RegisterRecipeServiceServer(s grpc.ServiceRegistrar, srv RecipeServiceServer) {
	s.RegisterService(&RecipeServiceDesc, srv)
}

type RecipeServer struct {
	service *service.Service
}

var _ RecipeServiceServer = (*RecipeServer)(nil)

// NewRecipeServer создаёт gRPC-сервер каталога рецептов.
func NewRecipeServer(svc *service.Service) *RecipeServer {
	return &RecipeServer{service: svc}
}

// ListRecipes возвращает страницу рецептов, упорядоченную по критерию.
func (s *RecipeServer) ListRecipes(ctx context.Context, req *ListRecipesRequest) (*ListRecipesResponse, error) {
	const op = "transport/grpc/server/ListRecipes"

	c, err := models.ParseFilterCriterion(req.Filter)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	}

	page, err := s.service.ListRecipes(ctx, models.ListOptions{
		Criterion: c,
		Category:  req.Category,
		Limit:     req.Limit,
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, toStatus(op, err)
	}

	items := make([]Recipe, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toRecipe(item))
	}

	return &ListRecipesResponse{
		Items:         items,
		NextPageToken: page.NextPageToken,
	}, nil
}

// GetRecipe возвращает рецепт по идентификатору.
func (s *RecipeServer) GetRecipe(ctx context.Context, req *GetRecipeRequest) (*GetRecipeResponse, error) {
	const op = "transport/grpc/server/GetRecipe"

	item, err := s.service.RecipeByID(ctx, req.ID)
	if err != nil {
		return nil, toStatus(op, err)
	}

	return &GetRecipeResponse{Item: toRecipe(*item)}, nil
}

// ListFilters возвращает доступные критерии в порядке отображения.
func (s *RecipeServer) ListFilters(context.Context, *ListFiltersRequest) (*ListFiltersResponse, error) {
	criteria := s.service.Filters()

	out := make([]Filter, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, Filter{ID: c.Key(), Label: c.Label()})
	}

	return &ListFiltersResponse{Filters: out}, nil
}

// toStatus транслирует ошибку сервиса в статус gRPC.
// Для Internal детали не раскрываются.
func toStatus(op string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrInvalidCursor):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	case errors.Is(err, service.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", op, err)
	case errors.Is(err, service.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func listRecipesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRecipesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(RecipeServiceServer).ListRecipes(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ListRecipes"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RecipeServiceServer).ListRecipes(ctx, req.(*ListRecipesRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func getRecipeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(RecipeServiceServer).GetRecipe(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetRecipe"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RecipeServiceServer).GetRecipe(ctx, req.(*GetRecipeRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func listFiltersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListFiltersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(RecipeServiceServer).ListFilters(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ListFilters"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RecipeServiceServer).ListFilters(ctx, req.(*ListFiltersRequest))
	}

	return interceptor(ctx, in, info, handler)
}
