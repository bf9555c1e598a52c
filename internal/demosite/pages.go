package demosite

// PageDefinition holds one demo page: its path and HTML content.
type PageDefinition struct {
	Path        string
	Description string
	HTML        string
}

// GetAllPages returns all demo page definitions.
func GetAllPages() []PageDefinition {
	return []PageDefinition{
		getHomePage(),
		getLoginPage(),
		getProductsPage(),
		getSearchPage(),
		getContactPage(),
		getAboutPage(),
	}
}

const navBar = `    <nav class="main-nav">
        <a href="/">Home</a> |
        <a href="/products">Products</a> |
        <a href="/search">Search</a> |
        <a href="/login">Login</a> |
        <a href="/contact">Contact</a> |
        <a href="/about">About</a>
    </nav>`

func getHomePage() PageDefinition {
	return PageDefinition{
		Path:        "/",
		Description: "Home page with navigation, hero imagery and a feature list",
		HTML: `<!DOCTYPE html>
<html>
<head>
    <title>Forge Outfitters - Home</title>
    <script src="/static/app.js"></script>
</head>
<body>
    <h1>Forge Outfitters</h1>
` + navBar + `
    <img src="/static/hero.jpg" alt="Storefront">
    <h2>Why shop with us</h2>
    <ul class="features">
        <li>Free shipping over $50</li>
        <li>30-day returns</li>
        <li>Carbon-neutral delivery</li>
    </ul>
    <a href="/products" class="btn btn-primary">Browse products</a>
</body>
</html>`,
	}
}

func getLoginPage() PageDefinition {
	return PageDefinition{
		Path:        "/login",
		Description: "Login form with username and password inputs",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Forge Outfitters - Login</title></head>
<body>
    <h1>Sign in</h1>
` + navBar + `
    <form id="login-form" action="/login" method="post">
        <input type="text" name="username" placeholder="Username" required>
        <input type="password" name="password" placeholder="Password" required>
        <input type="hidden" name="csrf_token" value="demo-token">
        <button type="submit">Sign in</button>
    </form>
    <a href="/contact">Forgot your password?</a>
</body>
</html>`,
	}
}

func getProductsPage() PageDefinition {
	return PageDefinition{
		Path:        "/products",
		Description: "Product catalog with a table, list and images",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Forge Outfitters - Products</title></head>
<body>
    <h1>Products</h1>
` + navBar + `
    <h2>Bestsellers</h2>
    <table class="catalog">
        <tr><th>Name</th><th>Price</th><th>Stock</th></tr>
        <tr><td>Field Jacket</td><td>$120</td><td>In stock</td></tr>
        <tr><td>Trail Boots</td><td>$95</td><td>In stock</td></tr>
        <tr><td>Canvas Pack</td><td>$60</td><td>Backorder</td></tr>
    </table>
    <h2>Categories</h2>
    <ol>
        <li>Outerwear</li>
        <li>Footwear</li>
        <li>Accessories</li>
    </ol>
    <img src="/static/jacket.jpg" alt="Field Jacket">
    <img src="/static/boots.jpg" alt="Trail Boots">
    <button class="btn" id="load-more">Load more</button>
</body>
</html>`,
	}
}

func getSearchPage() PageDefinition {
	return PageDefinition{
		Path:        "/search",
		Description: "Search page with a query input",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Forge Outfitters - Search</title></head>
<body>
    <h1>Search the catalog</h1>
` + navBar + `
    <form action="/search" method="get" role="search">
        <input type="search" name="q" placeholder="Search products...">
        <button type="submit">Search</button>
    </form>
    <h3>Popular searches</h3>
    <ul>
        <li>jacket</li>
        <li>boots</li>
        <li>waterproof</li>
    </ul>
</body>
</html>`,
	}
}

func getContactPage() PageDefinition {
	return PageDefinition{
		Path:        "/contact",
		Description: "Contact form with text, email and message fields",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Forge Outfitters - Contact</title></head>
<body>
    <h1>Contact us</h1>
` + navBar + `
    <form id="contact-form" action="/contact" method="post">
        <input type="text" name="name" placeholder="Your name" required>
        <input type="email" name="email" placeholder="you@example.com" required>
        <select name="topic">
            <option>Order question</option>
            <option>Returns</option>
            <option>Other</option>
        </select>
        <textarea name="message" placeholder="How can we help?"></textarea>
        <button type="submit">Send</button>
    </form>
</body>
</html>`,
	}
}

func getAboutPage() PageDefinition {
	return PageDefinition{
		Path:        "/about",
		Description: "About page with headings and prose",
		HTML: `<!DOCTYPE html>
<html>
<head><title>Forge Outfitters - About</title></head>
<body>
    <h1>About Forge Outfitters</h1>
` + navBar + `
    <h2>Our story</h2>
    <p>Founded in a garage, now shipping worldwide.</p>
    <h2>Our promise</h2>
    <p>Gear that outlasts the trail.</p>
    <h3>Visit us</h3>
    <p>14 Forge Street, Portland</p>
    <img src="/static/team.jpg" alt="The team">
</body>
</html>`,
	}
}
