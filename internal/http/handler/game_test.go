package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"zoomguess/internal/core"
	"zoomguess/internal/http/handler"
	"zoomguess/internal/http/handler/fake"
	tokenIssuer "zoomguess/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("GameHandler", func() {
	var (
		gh            *handler.GameHandler
		fakeService   *fake.GameService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.GameService)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		gh = handler.NewGameHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegisterUser", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","email":"alice@x.com","password":"secret"}`)
			req = httptest.NewRequest("POST", "/user", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}

			fakeService.RegisterReturns(core.UserRecord{
				ID:       7,
				Username: "alice",
				Email:    "alice@x.com",
			}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleRegisterUser(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with the created user", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var response struct {
					Message string          `json:"message"`
					User    core.UserRecord `json:"user"`
				}
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.Message).To(Equal("User created"))
				Expect(response.User.ID).To(Equal(uint(7)))
				Expect(response.User.Username).To(Equal("alice"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
				Expect(msg.Email).To(Equal("alice@x.com"))
				Expect(msg.Password).To(Equal("secret"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, core.ErrDuplicateCredential)
			})

			It("should return status 400 with the duplicate error", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrDuplicateCredential.Error()))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("Oops! Something went wrong"))
			})
		})
	})

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"secret"}`)
			req = httptest.NewRequest("POST", "/user/authenticate", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}

			fakeService.AuthenticateReturns(testToken, nil)
		})

		JustBeforeEach(func() {
			gh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the password is incorrect", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/user/7", nil)
			req.SetPathValue("id", "7")
			req.Header.Set("AUTH_TOKEN", testToken)

			fakeService.GetUserReturns(core.UserRecord{
				ID:       7,
				Username: "alice",
				Email:    "alice@x.com",
			}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleGetUser(w, req)
		})

		When("the user exists", func() {
			It("should return the user record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response core.UserRecord
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.Username).To(Equal("alice"))

				Expect(fakeService.GetUserCallCount()).To(Equal(1))
				_, token, id := fakeService.GetUserArgsForCall(0)
				Expect(token).To(Equal(testToken))
				Expect(id).To(Equal(uint(7)))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Set("AUTH_TOKEN", "")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("AUTH_TOKEN header is required"))
				Expect(fakeService.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "abc")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("user id must be a positive integer"))
				Expect(fakeService.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.UserRecord{}, tokenIssuer.ErrTokenNotValid)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.UserRecord{}, tokenIssuer.ErrTokenExpired)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserNotFound.Error()))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.UserRecord{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleDeleteUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/user/7", nil)
			req.SetPathValue("id", "7")
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			gh.HandleDeleteUser(w, req)
		})

		When("the user exists", func() {
			It("should delete the user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("User deleted"))

				Expect(fakeService.DeleteUserCallCount()).To(Equal(1))
				_, token, id := fakeService.DeleteUserArgsForCall(0)
				Expect(token).To(Equal(testToken))
				Expect(id).To(Equal(uint(7)))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Set("AUTH_TOKEN", "")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.DeleteUserCallCount()).To(Equal(0))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "-1")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DeleteUserCallCount()).To(Equal(0))
			})
		})

		When("the user doesn't exist", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrUserNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserNotFound.Error()))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(tokenIssuer.ErrTokenNotValid)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetLeaderboard", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/leaderboard", nil)
		})

		JustBeforeEach(func() {
			gh.HandleGetLeaderboard(w, req)
		})

		When("guesses exist", func() {
			BeforeEach(func() {
				fakeService.LeaderboardReturns([]core.LeaderboardEntry{
					{
						Username:  "alice",
						ImageID:   1,
						Guess:     "Eiffel Tower",
						IsCorrect: true,
						Timestamp: "2025-04-01 10:00:00",
					},
					{
						Username:  "Unknown",
						ImageID:   2,
						Guess:     "Great Wall",
						IsCorrect: false,
						Timestamp: "2025-04-01 09:00:00",
					},
				}, nil)
			})

			It("should return a bare JSON array in ranked order", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response []core.LeaderboardEntry
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response).To(HaveLen(2))
				Expect(response[0].Username).To(Equal("alice"))
				Expect(response[1].Username).To(Equal("Unknown"))
			})
		})

		When("no guesses exist", func() {
			BeforeEach(func() {
				fakeService.LeaderboardReturns([]core.LeaderboardEntry{}, nil)
			})

			It("should return an empty array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.LeaderboardReturns(nil, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})
})
