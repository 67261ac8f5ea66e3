package userdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/pkg/errorspkg"
	"github.com/finwise/wallet-tracker/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestDemoAPI(t *testing.T) {
	demoUser := domain.User{
		ID:             randompkg.OwnerID(),
		Name:           randompkg.String(8),
		Email:          randompkg.Email(),
		Profile:        randompkg.String(30),
		HashedPassword: randompkg.String(32),
	}

	testCases := []struct {
		name           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		checkResponse  func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(demoUser.ID)).
					Times(1).
					Return(demoUser, nil)
			},
			wantStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var res struct {
					Data struct {
						User domain.User `json:"user"`
					} `json:"data"`
				}

				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, demoUser.Name, res.Data.User.Name)
				require.Equal(t, demoUser.Email, res.Data.User.Email)

				// The password hash never leaves the service.
				require.NotContains(t, recorder.Body.String(), demoUser.HashedPassword)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InternalError",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			handler := NewHandler(service, demoUser.ID)

			server := gin.New()
			server.GET("/users/demo", handler.Demo)

			req, err := http.NewRequest(http.MethodGet, "/users/demo", nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, recorder)
			}
		})
	}
}
