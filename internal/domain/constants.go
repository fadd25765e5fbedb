package domain

// MaxTransactionQuantity caps the per-line quantity of a purchase or sell
// request. Keeps a single request from looping over absurd counts.
const MaxTransactionQuantity = 1000

// MaxPurchaseLines caps the number of line items in one shop request.
const MaxPurchaseLines = 50
