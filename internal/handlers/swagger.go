package handlers

// @title Italian Income Tax API
// @version 1.0
// @description Italian personal income tax calculator: INPS contributions, progressive IRPEF, regional and municipal surtaxes (2025 rates)

// @contact.name API Support
// @contact.url https://github.com/your-org/irpef-tax-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8001
// @BasePath /api

// @tag.name geography
// @tag.description Region, province and city listings from the rate table

// @tag.name tax
// @tag.description Tax calculation, comparison and optimization operations
