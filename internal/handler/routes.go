package handler

// APIV1Prefix is the canonical base path for public HTTP API v1.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIV1Prefix = "/api/v1"

// ItemsPath is the list endpoint; navigation URLs are built against it.
const ItemsPath = APIV1Prefix + "/items"
