package handler

// APIV1Prefix is the canonical base path for the public HTTP API.
// Single source of truth so handlers and tests cannot drift apart.
const APIV1Prefix = "/api/v1"
