// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Middleware

  - WithLogging: logs request start and completion with duration
  - CORS: allows cross-origin requests, including the admin headers

# Helpers

  - JSONResponse: writes a JSON response with status code
  - ErrorResponse: writes a standard error response
  - ParseJSONBody: decodes a JSON request body
  - GetClientIP: extracts the client IP (X-Forwarded-For, X-Real-IP,
    RemoteAddr), which is the raw material for voter keys
*/
package middleware
