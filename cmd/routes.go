package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))

	mux := pat.New()

	// Advertisements
	mux.Post("/advertisement", authMiddleware.ThenFunc(app.advertisementHandler.CreateAdvertisement))
	mux.Get("/advertisements", standardMiddleware.ThenFunc(app.advertisementHandler.GetPublishedAdvertisements))
	mux.Get("/advertisements/search/range", standardMiddleware.ThenFunc(app.advertisementHandler.SearchAdvertisementsInRange))
	mux.Get("/advertisements/search/fast", standardMiddleware.ThenFunc(app.advertisementHandler.FastSearch))
	mux.Get("/advertisements/search/location", standardMiddleware.ThenFunc(app.advertisementHandler.LocationSearch))
	mux.Get("/advertisements/search", standardMiddleware.ThenFunc(app.advertisementHandler.SearchAdvertisements))
	mux.Get("/advertisements/user/:user_id", authMiddleware.ThenFunc(app.advertisementHandler.GetAdvertisementsByUserID))
	mux.Get("/advertisements/chosen/:created_by", authMiddleware.ThenFunc(app.advertisementHandler.GetChosenAdvertisements))
	mux.Post("/advertisements/choose", authMiddleware.ThenFunc(app.advertisementHandler.ChooseAdvertisement))
	mux.Post("/advertisements/buy-points", authMiddleware.ThenFunc(app.advertisementHandler.BuyPoints))
	mux.Put("/advertisement/:id", authMiddleware.ThenFunc(app.advertisementHandler.UpdateAdvertisement))
	mux.Del("/advertisement/:id", authMiddleware.ThenFunc(app.advertisementHandler.DeleteAdvertisement))

	// Images
	mux.Post("/advertisement/:id/images", authMiddleware.ThenFunc(app.imageHandler.UploadImage))
	mux.Get("/advertisement/:id/images", standardMiddleware.ThenFunc(app.imageHandler.GetImagesByAdvertisementID))
	mux.Get("/advertisement/:id", standardMiddleware.ThenFunc(app.advertisementHandler.GetAdvertisementByID))
	mux.Get("/images/advertisements/:filename", http.HandlerFunc(app.imageHandler.ServeImage))

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/device_token", authMiddleware.ThenFunc(app.userHandler.SaveDeviceToken))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/user/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Messages
	mux.Post("/message", authMiddleware.ThenFunc(app.messageHandler.CreateMessage))
	mux.Get("/messages/chat/:chat_id", authMiddleware.ThenFunc(app.messageHandler.GetMessagesForChat))
	mux.Del("/message/:id", authMiddleware.ThenFunc(app.messageHandler.DeleteMessage))

	// WebSocket
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	return mux
}
