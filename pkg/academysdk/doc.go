// Package academysdk is a Go client for the Upper Hound Academy invitation
// service. It covers the unauthenticated surface (verify, accept, register,
// login, bootstrap, health) directly on the SDKClient, and the authenticated
// staff surface (issuing and listing invitations) through a Session obtained
// from Login.
package academysdk
