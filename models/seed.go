package models

// DefaultCategories ilk kurulumda eklenen kategoriler.
// sort_order listelemede toplam sıralamayı belirler, eşitlikte id'ye bakılır.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "🛒 Market", Icon: "🏪", Color: "#ff6b00", SortOrder: 1},
		{ID: 2, Name: "🍔 Yemek", Icon: "🍕", Color: "#ff4757", SortOrder: 2},
		{ID: 3, Name: "🏠 Emlak", Icon: "🏠", Color: "#3742fa", SortOrder: 3},
		{ID: 4, Name: "🔥 Canlı Mezat", Icon: "🔨", Color: "#2ed573", SortOrder: 4},
		{ID: 5, Name: "✂️ Güzellik", Icon: "💇", Color: "#a55eea", SortOrder: 5},
		{ID: 6, Name: "🏥 Sağlık", Icon: "🏥", Color: "#26de81", SortOrder: 6},
		{ID: 7, Name: "🛠️ Usta", Icon: "🔧", Color: "#778ca3", SortOrder: 7},
		{ID: 8, Name: "🍰 Pastane", Icon: "🍰", Color: "#fdcb6e", SortOrder: 8},
	}
}

// DefaultServices ilk kurulumda eklenen örnek hizmetler (price 0 = fiyat listelenmiyor)
func DefaultServices() []Service {
	return []Service{
		{ID: 1, CategoryID: 1, Name: "Süper Market", Description: "Günlük ihtiyaçlar, temel gıda", Price: 0, ImageURL: "https://picsum.photos/seed/market1/300/200.jpg"},
		{ID: 2, CategoryID: 1, Name: "Manav", Description: "Taze sebze meyve", Price: 0, ImageURL: "https://picsum.photos/seed/manav1/300/200.jpg"},
		{ID: 3, CategoryID: 2, Name: "Dönerci", Description: "Et döner, tavuk döner", Price: 150, ImageURL: "https://picsum.photos/seed/doner1/300/200.jpg"},
		{ID: 4, CategoryID: 2, Name: "Pizzacı", Description: "Bol malzemos pizza", Price: 200, ImageURL: "https://picsum.photos/seed/pizza1/300/200.jpg"},
		{ID: 5, CategoryID: 3, Name: "Satılık Daire", Description: "2+1 100m² merkezi", Price: 1500000, ImageURL: "https://picsum.photos/seed/daire1/300/200.jpg"},
		{ID: 6, CategoryID: 3, Name: "Kiralık Daire", Description: "1+1 60m² eşyalı", Price: 8000, ImageURL: "https://picsum.photos/seed/kiralik1/300/200.jpg"},
		{ID: 7, CategoryID: 4, Name: "Elektronik Mezat", Description: "İkinci el telefon", Price: 0, ImageURL: "https://picsum.photos/seed/mezat1/300/200.jpg"},
		{ID: 8, CategoryID: 5, Name: "Erkek Kuaför", Description: "Saç, sakal traşı", Price: 150, ImageURL: "https://picsum.photos/seed/kuafor1/300/200.jpg"},
		{ID: 9, CategoryID: 6, Name: "Eczane", Description: "Reçeteli ilaç", Price: 0, ImageURL: "https://picsum.photos/seed/eczane1/300/200.jpg"},
		{ID: 10, CategoryID: 7, Name: "Elektrik Ustası", Description: "Acil elektrik", Price: 500, ImageURL: "https://picsum.photos/seed/usta1/300/200.jpg"},
		{ID: 11, CategoryID: 8, Name: "Börekçi", Description: "Sıcak börek", Price: 50, ImageURL: "https://picsum.photos/seed/borek1/300/200.jpg"},
	}
}
