package server

// General API annotations. Individual endpoint annotations live in the
// handler files; the served document is internal/embedded/openapi.
//
// @title ibanapi
// @version 1.0
// @description Validates International Bank Account Numbers and decomposes them into
// @description their components: check digits, BBAN, bank and branch identifiers.
//
// @license.name MIT
//
// @host 127.0.0.1:3000
// @BasePath /
