package i18n

var messages = map[string]map[string]string{
	"en": {
		"actions.save":     "Save",
		"actions.edit":     "Edit",
		"actions.delete":   "Delete",
		"actions.cancel":   "Cancel",
		"actions.activate": "Activate",
		"actions.filter":   "Filter",

		"app.title":          "Global Export Visibility Platform",
		"app.welcome":        "Welcome to GEVP. Type 'help' for the list of commands.",
		"app.bye":            "Bye!",
		"app.unknownCommand": "Unknown command: %s. Type 'help'.",
		"app.usage":          "Usage: %s",
		"app.cancelled":      "Cancelled.",

		"nav.home":      "Home",
		"nav.exports":   "Export directory",
		"nav.dashboard": "Dashboard",
		"nav.admin":     "Admin",

		"auth.email":           "Email",
		"auth.password":        "Password",
		"auth.confirmPassword": "Confirm password",
		"auth.role":            "Role",
		"auth.country":         "Country",
		"auth.login":           "Log in",
		"auth.register":        "Register",
		"auth.logout":          "Log out",
		"auth.loginRequired":   "Please log in to continue.",
		"auth.notAuthorized":   "Not authorized.",
		"auth.loggedIn":        "Logged in as %s (%s).",
		"auth.loggedOut":       "Logged out.",
		"auth.sessionExpired":  "Your session has expired. Please log in again.",
		"auth.tokenExpires":    "Token expires at %s.",
		"auth.registered":      "Registration submitted. An administrator must activate your account.",

		"products.title":         "Products",
		"products.none":          "No products found.",
		"products.created":       "Product created.",
		"products.updated":       "Product updated.",
		"products.deleted":       "Product deleted.",
		"products.notFound":      "Product %s not found.",
		"products.confirmDelete": "Delete product %s? [y/N]: ",
		"products.deletePrompt":  "Delete product %s?",
		"products.name":          "Name",
		"products.unit":          "Unit",
		"products.quantity":      "Quantity",
		"products.taxRate":       "Tax rate (%)",
		"products.timePeriod":    "Time period",
		"products.tags":          "Tags (comma separated)",
		"products.category":      "Category",
		"products.country":       "Country",

		"exporters.title":     "Authorized exporters",
		"exporters.none":      "No exporters found.",
		"exporters.created":   "Exporter created.",
		"exporters.name":      "Company name",
		"exporters.licenseId": "License ID",
		"exporters.contact":   "Contact",
		"exporters.website":   "Website",

		"countries.title":  "Countries",
		"countries.none":   "No countries found.",
		"countries.region": "Region",
		"countries.code":   "Code",

		"users.title":     "Users",
		"users.activated": "User activated.",
		"users.active":    "Active",
		"users.pending":   "Pending",

		"audit.title":       "Audit logs",
		"audit.none":        "No audit entries.",
		"audit.action":      "Action",
		"audit.description": "Description",
		"audit.timestamp":   "Time",
		"audit.user":        "User",

		"stats.totalProducts": "Total products",
		"stats.exporters":     "Authorized exporters",
		"stats.categories":    "Categories",
		"stats.totalQuantity": "Total quantity",
		"stats.totalUsers":    "Total users",
		"stats.countries":     "Countries",
		"stats.activeUsers":   "Active users",
		"stats.pending":       "Pending activation",

		"converter.title":       "Unit converter",
		"converter.result":      "%s %s = %s %s",
		"converter.unsupported": "Cannot convert %s to %s.",
		"converter.invalid":     "Invalid number: %s.",

		"prefs.theme":       "Theme: %s.",
		"prefs.language":    "Language: %s.",
		"prefs.unsupported": "Unsupported language: %s.",
		"prefs.badTheme":    "Unknown theme: %s. Use light, dark or toggle.",

		"storage.title":         "Local storage",
		"storage.empty":         "Nothing is stored locally.",
		"storage.key":           "Key",
		"storage.size":          "Bytes",
		"storage.updated":       "Updated",
		"storage.confirmForget": "Sign out and erase the stored session, token and preferences? [y/N]: ",
		"storage.forgotten":     "Local data erased.",

		"health.status": "Backend status: %s (%s).",

		"errors.generic":     "Something went wrong. Please try again.",
		"errors.unavailable": "The server is unavailable. Please try again later.",

		"validation.required":          "is required",
		"validation.positive":          "must not be negative",
		"validation.emailInvalid":      "is not a valid email address",
		"validation.passwordMinLength": "must be at least 6 characters",
		"validation.passwordsMatch":    "passwords do not match",
		"validation.roleInvalid":       "is not a valid role",
		"validation.number":            "must be a number",
	},
	"es": {
		"actions.save":     "Guardar",
		"actions.edit":     "Editar",
		"actions.delete":   "Eliminar",
		"actions.cancel":   "Cancelar",
		"actions.activate": "Activar",
		"actions.filter":   "Filtrar",

		"app.title":          "Plataforma Global de Visibilidad de Exportaciones",
		"app.welcome":        "Bienvenido a GEVP. Escriba 'help' para ver los comandos.",
		"app.bye":            "¡Adiós!",
		"app.unknownCommand": "Comando desconocido: %s. Escriba 'help'.",
		"app.usage":          "Uso: %s",
		"app.cancelled":      "Cancelado.",

		"nav.home":      "Inicio",
		"nav.exports":   "Directorio de exportaciones",
		"nav.dashboard": "Panel",
		"nav.admin":     "Administración",

		"auth.email":           "Correo electrónico",
		"auth.password":        "Contraseña",
		"auth.confirmPassword": "Confirmar contraseña",
		"auth.role":            "Rol",
		"auth.country":         "País",
		"auth.login":           "Iniciar sesión",
		"auth.register":        "Registrarse",
		"auth.logout":          "Cerrar sesión",
		"auth.loginRequired":   "Inicie sesión para continuar.",
		"auth.notAuthorized":   "No autorizado.",
		"auth.loggedIn":        "Sesión iniciada como %s (%s).",
		"auth.loggedOut":       "Sesión cerrada.",
		"auth.sessionExpired":  "Su sesión ha expirado. Inicie sesión de nuevo.",
		"errors.generic":       "Algo salió mal. Inténtelo de nuevo.",
		"errors.unavailable":   "El servidor no está disponible. Inténtelo más tarde.",
		"auth.registered":      "Registro enviado. Un administrador debe activar su cuenta.",

		"products.title":         "Productos",
		"products.none":          "No se encontraron productos.",
		"products.created":       "Producto creado.",
		"products.updated":       "Producto actualizado.",
		"products.deleted":       "Producto eliminado.",
		"products.notFound":      "Producto %s no encontrado.",
		"products.confirmDelete": "¿Eliminar el producto %s? [y/N]: ",
		"products.deletePrompt":  "¿Eliminar el producto %s?",
		"products.name":          "Nombre",
		"products.unit":          "Unidad",
		"products.quantity":      "Cantidad",
		"products.taxRate":       "Tasa de impuesto (%)",
		"products.timePeriod":    "Período",
		"products.category":      "Categoría",
		"products.country":       "País",

		"exporters.title":     "Exportadores autorizados",
		"exporters.none":      "No se encontraron exportadores.",
		"exporters.created":   "Exportador creado.",
		"exporters.licenseId": "Licencia",

		"countries.title":  "Países",
		"countries.region": "Región",

		"users.title":     "Usuarios",
		"users.activated": "Usuario activado.",
		"users.active":    "Activo",
		"users.pending":   "Pendiente",

		"audit.title": "Registros de auditoría",

		"stats.totalProducts": "Total de productos",
		"stats.exporters":     "Exportadores autorizados",
		"stats.categories":    "Categorías",
		"stats.totalQuantity": "Cantidad total",
		"stats.totalUsers":    "Total de usuarios",
		"stats.countries":     "Países",
		"stats.activeUsers":   "Usuarios activos",
		"stats.pending":       "Pendientes de activación",

		"converter.title":       "Conversor de unidades",
		"converter.unsupported": "No se puede convertir %s a %s.",

		"prefs.theme":    "Tema: %s.",
		"prefs.language": "Idioma: %s.",

		"storage.title":         "Almacenamiento local",
		"storage.empty":         "No hay nada guardado localmente.",
		"storage.key":           "Clave",
		"storage.updated":       "Actualizado",
		"storage.confirmForget": "¿Cerrar sesión y borrar la sesión, el token y las preferencias guardados? [y/N]: ",
		"storage.forgotten":     "Datos locales borrados.",

		"validation.required":          "es obligatorio",
		"validation.positive":          "no puede ser negativo",
		"validation.emailInvalid":      "no es un correo válido",
		"validation.passwordMinLength": "debe tener al menos 6 caracteres",
		"validation.passwordsMatch":    "las contraseñas no coinciden",
	},
	"fr": {
		"actions.save":     "Enregistrer",
		"actions.edit":     "Modifier",
		"actions.delete":   "Supprimer",
		"actions.cancel":   "Annuler",
		"actions.activate": "Activer",
		"actions.filter":   "Filtrer",

		"app.title":          "Plateforme mondiale de visibilité des exportations",
		"app.welcome":        "Bienvenue sur GEVP. Tapez 'help' pour la liste des commandes.",
		"app.bye":            "Au revoir !",
		"app.unknownCommand": "Commande inconnue : %s. Tapez 'help'.",
		"app.cancelled":      "Annulé.",

		"nav.home":      "Accueil",
		"nav.exports":   "Annuaire des exportations",
		"nav.dashboard": "Tableau de bord",
		"nav.admin":     "Administration",

		"auth.email":          "E-mail",
		"auth.password":       "Mot de passe",
		"auth.login":          "Se connecter",
		"auth.register":       "S'inscrire",
		"auth.logout":         "Se déconnecter",
		"auth.loginRequired":  "Veuillez vous connecter pour continuer.",
		"auth.notAuthorized":  "Non autorisé.",
		"auth.loggedIn":       "Connecté en tant que %s (%s).",
		"auth.loggedOut":      "Déconnecté.",
		"auth.sessionExpired": "Votre session a expiré. Veuillez vous reconnecter.",
		"errors.generic":      "Une erreur est survenue. Veuillez réessayer.",
		"errors.unavailable":  "Le serveur est indisponible. Veuillez réessayer plus tard.",

		"products.title":    "Produits",
		"products.none":     "Aucun produit trouvé.",
		"products.created":  "Produit créé.",
		"products.updated":  "Produit mis à jour.",
		"products.deleted":  "Produit supprimé.",
		"products.name":     "Nom",
		"products.unit":     "Unité",
		"products.quantity": "Quantité",
		"products.category": "Catégorie",
		"products.country":  "Pays",

		"exporters.title":   "Exportateurs agréés",
		"exporters.created": "Exportateur créé.",

		"countries.title": "Pays",

		"users.title":     "Utilisateurs",
		"users.activated": "Utilisateur activé.",

		"audit.title": "Journaux d'audit",

		"stats.totalProducts": "Total des produits",
		"stats.exporters":     "Exportateurs agréés",
		"stats.totalUsers":    "Total des utilisateurs",
		"stats.countries":     "Pays",
		"stats.activeUsers":   "Utilisateurs actifs",

		"converter.title": "Convertisseur d'unités",

		"prefs.theme":    "Thème : %s.",
		"prefs.language": "Langue : %s.",

		"storage.title":     "Stockage local",
		"storage.forgotten": "Données locales effacées.",

		"validation.required": "est obligatoire",
		"validation.positive": "ne doit pas être négatif",
	},
	"bn": {
		"app.title":   "গ্লোবাল এক্সপোর্ট ভিজিবিলিটি প্ল্যাটফর্ম",
		"app.welcome": "GEVP-তে স্বাগতম। কমান্ডের তালিকার জন্য 'help' লিখুন।",
		"app.bye":     "বিদায়!",

		"nav.home":      "হোম",
		"nav.exports":   "রপ্তানি ডিরেক্টরি",
		"nav.dashboard": "ড্যাশবোর্ড",
		"nav.admin":     "অ্যাডমিন",

		"auth.email":          "ইমেইল",
		"auth.password":       "পাসওয়ার্ড",
		"auth.login":          "লগ ইন",
		"auth.register":       "নিবন্ধন",
		"auth.logout":         "লগ আউট",
		"auth.loginRequired":  "চালিয়ে যেতে লগ ইন করুন।",
		"auth.notAuthorized":  "অনুমতি নেই।",
		"auth.loggedOut":      "লগ আউট হয়েছে।",
		"auth.sessionExpired": "আপনার সেশনের মেয়াদ শেষ। আবার লগ ইন করুন।",

		"products.title":   "পণ্য",
		"products.none":    "কোনো পণ্য পাওয়া যায়নি।",
		"products.created": "পণ্য তৈরি হয়েছে।",
		"products.deleted": "পণ্য মুছে ফেলা হয়েছে।",

		"exporters.title": "অনুমোদিত রপ্তানিকারক",
		"countries.title": "দেশসমূহ",
		"users.title":     "ব্যবহারকারী",
		"audit.title":     "অডিট লগ",

		"stats.totalProducts": "মোট পণ্য",
		"stats.totalUsers":    "মোট ব্যবহারকারী",
		"stats.activeUsers":   "সক্রিয় ব্যবহারকারী",

		"converter.title": "একক রূপান্তরকারী",

		"prefs.theme":    "থিম: %s।",
		"prefs.language": "ভাষা: %s।",

		"validation.required": "আবশ্যক",
	},
}
