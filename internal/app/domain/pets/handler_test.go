package pets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SoYuDev/petalth-crm/internal/app/guard"
	"github.com/SoYuDev/petalth-crm/internal/app/session"
	"github.com/SoYuDev/petalth-crm/internal/app/views"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

type MockPetAPI struct {
	mock.Mock
}

func (m *MockPetAPI) PetsByOwner(ctx context.Context, ownerID int64) ([]petalth.Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]petalth.Pet), args.Error(1)
}

func (m *MockPetAPI) CreatePet(ctx context.Context, req petalth.PetRequest) (*petalth.Pet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*petalth.Pet), args.Error(1)
}

func (m *MockPetAPI) UpdatePet(ctx context.Context, id int64, req petalth.PetRequest) (*petalth.Pet, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*petalth.Pet), args.Error(1)
}

func (m *MockPetAPI) DeletePet(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newPetRouter(api petAPI, rec *session.Record) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	handlers := NewPetHandlers(api, logger)

	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	r.Use(func(c *gin.Context) {
		cache := session.NewCache(rec)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), cache))
		c.Next()
	})

	r.GET("/pets", handlers.MyPetsHandler)
	group := r.Group("/pets/:ownerId")
	group.Use(guard.RequireOwner(logger))
	group.GET("", handlers.ListHandler)
	group.POST("", handlers.CreateHandler)
	group.POST("/update/:petId", handlers.UpdateHandler)
	group.POST("/delete/:petId", handlers.DeleteHandler)
	return r
}

func ownerSession() *session.Record {
	return &session.Record{ID: 7, Token: "jwt-token", Name: "Ana", Role: session.RoleOwner}
}

func TestMyPetsHandler(t *testing.T) {
	t.Run("RedirectsToOwnList", func(t *testing.T) {
		r := newPetRouter(new(MockPetAPI), ownerSession())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/pets/7", w.Header().Get("Location"))
	})

	t.Run("AnonymousGoesToLogin", func(t *testing.T) {
		r := newPetRouter(new(MockPetAPI), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestListHandler(t *testing.T) {
	t.Run("RendersOwnPets", func(t *testing.T) {
		api := new(MockPetAPI)
		api.On("PetsByOwner", mock.Anything, int64(7)).Return([]petalth.Pet{
			{ID: 3, Name: "Luna", BirthDate: "2020-03-15", OwnerID: 7},
		}, nil)
		r := newPetRouter(api, ownerSession())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets/7", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Luna")
		api.AssertExpectations(t)
	})

	t.Run("ForeignOwnerRedirectedBeforeFetch", func(t *testing.T) {
		api := new(MockPetAPI)
		r := newPetRouter(api, ownerSession())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets/9", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/pets/7", w.Header().Get("Location"))
		api.AssertNotCalled(t, "PetsByOwner")
	})

	t.Run("AdminMayViewAnyOwner", func(t *testing.T) {
		api := new(MockPetAPI)
		api.On("PetsByOwner", mock.Anything, int64(9)).Return([]petalth.Pet{}, nil)
		admin := &session.Record{ID: 1, Token: "jwt-token", Role: session.RoleAdmin}
		r := newPetRouter(api, admin)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets/9", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCreateHandler(t *testing.T) {
	api := new(MockPetAPI)
	api.On("CreatePet", mock.Anything, petalth.PetRequest{
		Name:      "Luna",
		BirthDate: "2020-03-15",
		OwnerID:   7,
	}).Return(&petalth.Pet{ID: 3, Name: "Luna"}, nil)
	r := newPetRouter(api, ownerSession())

	form := url.Values{"name": {"Luna"}, "birthDate": {"2020-03-15"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pets/7", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pets/7", w.Header().Get("Location"))
	api.AssertExpectations(t)
}

func TestDeleteHandler(t *testing.T) {
	api := new(MockPetAPI)
	api.On("DeletePet", mock.Anything, int64(3)).Return(nil)
	r := newPetRouter(api, ownerSession())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pets/7/delete/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pets/7", w.Header().Get("Location"))
	api.AssertExpectations(t)
}
