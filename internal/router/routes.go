package router

// Routes returns the client's route table. Protected routes carry
// RequiresAuth; the admin section additionally carries RequiresAdmin.
func Routes() []Route {
	return []Route{
		{Path: "/", Name: "Home"},

		{Path: "/register", Name: "Register"},
		{Path: "/login", Name: "Login"},

		{Path: "/content", Name: "ContentList"},
		{Path: "/content/:id", Name: "ContentDetail"},

		{Path: "/products", Name: "ProductList"},
		{Path: "/products/:id", Name: "ProductDetail"},

		{Path: "/activities", Name: "ActivityList"},
		{Path: "/activities/:id", Name: "ActivityDetail"},
		{Path: "/activities/create", Name: "ActivityCreate", RequiresAuth: true},

		{Path: "/bases", Name: "BaseList"},
		{Path: "/bases/:id", Name: "BaseDetail"},

		{Path: "/dashboard", Name: "UserDashboard", RequiresAuth: true},
		{Path: "/orders", Name: "OrderList", RequiresAuth: true},
		{Path: "/orders/:id", Name: "OrderDetail", RequiresAuth: true},
		{Path: "/favorites", Name: "UserFavorites", RequiresAuth: true},

		{Path: "/admin", Name: "AdminDashboard", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/content", Name: "AdminContent", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/activities", Name: "AdminActivities", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/orders", Name: "AdminOrders", RequiresAuth: true, RequiresAdmin: true},
		{Path: "/admin/users", Name: "AdminUsers", RequiresAuth: true, RequiresAdmin: true},

		{Path: "/about", Name: "About"},
	}
}
