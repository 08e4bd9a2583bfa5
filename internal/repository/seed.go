package repository

import "github.com/Lixing-Zhang/lumber-store/backend/internal/models"

const (
	imgLumber     = "https://images.unsplash.com/photo-1617788138017-80ad40651399?auto=format&fit=crop&q=80&w=500&h=500"
	imgBoard      = "https://images.unsplash.com/photo-1520627977056-c307aeb9a625?auto=format&fit=crop&q=80&w=500&h=500"
	imgBeam       = "https://images.unsplash.com/photo-1622021142947-da7dedc7c39a?auto=format&fit=crop&q=80&w=500&h=500"
	imgBuilding   = "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?auto=format&fit=crop&q=80&w=500&h=500"
	imgHardware   = "https://images.unsplash.com/photo-1567361672830-f7aa558ec4e3?auto=format&fit=crop&q=80&w=500&h=500"
	imgTools      = "https://images.unsplash.com/photo-1581166397057-235af2b3c6dd?auto=format&fit=crop&q=80&w=500&h=500"
	imgInsulation = "https://images.unsplash.com/photo-1604187353254-2526faf17ffe?auto=format&fit=crop&q=80&w=500&h=500"
	imgCement     = "https://images.unsplash.com/photo-1571217668979-f46db8864f75?auto=format&fit=crop&q=80&w=500&h=500"
	imgDrill      = "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?auto=format&fit=crop&q=80&w=500&h=500"
	imgBrick      = "https://images.unsplash.com/photo-1581084349663-25d57f3d94d5?auto=format&fit=crop&q=80&w=500&h=500"
	imgTape       = "https://images.unsplash.com/photo-1613485252551-056834a5425f?auto=format&fit=crop&q=80&w=500&h=500"
	imgScrews     = "https://images.unsplash.com/photo-1615486363973-f79d875780cf?auto=format&fit=crop&q=80&w=500&h=500"
)

const (
	gradePremium = "0 сорт (высший)"
	gradeFirst   = "1 сорт"
	gradeSecond  = "2 сорт"
	gradeThird   = "3 сорт"

	moistureNatural = "Естественная влажность (18–22%)"
	moistureKiln    = "Камерная сушка (8–12%)"

	treatEdged    = "Обрезная"
	treatUnedged  = "Необрезная"
	treatPlaned   = "Строганная"
	treatTongued  = "Шпунтованная"
	purposeBuild  = "Строительство"
	purposeFinish = "Отделка"
	purposeFurn   = "Мебельное производство"
	purposeDecor  = "Декор"
)

func mm(v int) *int {
	return &v
}

func seedCategories() []models.Category {
	return []models.Category{
		{
			ID:    "lumber",
			Name:  "Пиломатериалы",
			Image: imgLumber,
			SubCategories: []models.Category{
				{ID: "edged-board", Name: "Доска обрезная", Image: imgBoard, ParentID: "lumber"},
				{ID: "beam", Name: "Брус", Image: imgBeam, ParentID: "lumber"},
				{ID: "planed-board", Name: "Доска строганная", Image: imgBoard, ParentID: "lumber"},
				{ID: "lining", Name: "Вагонка", Image: imgLumber, ParentID: "lumber"},
				{ID: "plywood", Name: "Фанера и плиты", Image: imgBuilding, ParentID: "lumber"},
			},
		},
		{ID: "building-materials", Name: "Стройматериалы", Image: imgBuilding},
		{ID: "hardware", Name: "Метизы", Image: imgHardware},
		{ID: "tools", Name: "Инструменты", Image: imgTools},
		{ID: "paints", Name: "Лакокрасочные материалы", Image: imgBuilding},
		{ID: "insulation", Name: "Теплоизоляционные материалы", Image: imgInsulation},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Доска обрезная 25х100х6000",
			Description: "Доска обрезная из хвойных пород древесины. Применяется в строительстве для обшивки стен, потолка, настила полов, изготовления опалубки.",
			Price:       180, Image: imgBoard, Category: "Доска обрезная", InStock: true, Unit: "м",
			WoodType: "Сосна", Thickness: mm(25), Width: mm(100), Length: mm(6000),
			Grade: gradeFirst, Moisture: moistureNatural, SurfaceTreatment: treatEdged, Purpose: purposeBuild,
		},
		{
			ID:          "2",
			Name:        "Брус 100х100х6000",
			Description: "Брус из хвойных пород древесины. Применяется в строительстве для силовых конструкций каркасов, стропильных систем.",
			Price:       650, Image: imgBeam, Category: "Брус", InStock: true, Unit: "шт",
			WoodType: "Сосна", Thickness: mm(100), Width: mm(100), Length: mm(6000),
			Grade: gradeFirst, Moisture: moistureNatural, SurfaceTreatment: treatEdged, Purpose: purposeBuild,
		},
		{
			ID:          "3",
			Name:        "Доска обрезная 50х150х6000",
			Description: "Сухая обрезная доска из ели для каркасного домостроения и перекрытий.",
			Price:       420, Image: imgBoard, Category: "Доска обрезная", InStock: true, Unit: "шт",
			WoodType: "Ель", Thickness: mm(50), Width: mm(150), Length: mm(6000),
			Grade: gradeSecond, Moisture: moistureKiln, SurfaceTreatment: treatEdged, Purpose: purposeBuild,
		},
		{
			ID:          "4",
			Name:        "Брус клеёный 150х150х6000",
			Description: "Клеёный профилированный брус камерной сушки. Не даёт усадки, подходит для стен жилых домов.",
			Price:       3900, Image: imgBeam, Category: "Брус", InStock: true, Unit: "шт",
			WoodType: "Ель", Thickness: mm(150), Width: mm(150), Length: mm(6000),
			Grade: gradePremium, Moisture: moistureKiln, SurfaceTreatment: treatPlaned, Purpose: purposeBuild,
		},
		{
			ID:          "5",
			Name:        "Доска мебельная 40х200х3000",
			Description: "Массивная доска из твёрдых лиственных пород для мебельных щитов, столешниц и ступеней.",
			Price:       5200, Image: imgBoard, Category: "Доска строганная", InStock: true, Unit: "шт",
			WoodType: "Дуб", Thickness: mm(40), Width: mm(200), Length: mm(3000),
			Grade: gradePremium, Moisture: moistureKiln, SurfaceTreatment: treatPlaned, Purpose: purposeFurn,
		},
		{
			ID:          "6",
			Name:        "Доска строганная 22х120х4000",
			Description: "Строганная доска из ясеня для внутренней отделки и изготовления подоконников.",
			Price:       980, Image: imgBoard, Category: "Доска строганная", InStock: true, Unit: "шт",
			WoodType: "Ясень", Thickness: mm(22), Width: mm(120), Length: mm(4000),
			Grade: gradeFirst, Moisture: moistureKiln, SurfaceTreatment: treatPlaned, Purpose: purposeFinish,
		},
		{
			ID:          "7",
			Name:        "Вагонка штиль 16х125х3000",
			Description: "Сосновая вагонка с гладкой лицевой поверхностью для отделки стен и потолков.",
			Price:       290, Image: imgLumber, Category: "Вагонка", InStock: true, Unit: "м²",
			WoodType: "Сосна", Thickness: mm(16), Width: mm(125), Length: mm(3000),
			Grade: gradeFirst, Moisture: moistureKiln, SurfaceTreatment: treatTongued, Purpose: purposeFinish,
		},
		{
			ID:          "8",
			Name:        "Вагонка для бани 16х90х3000",
			Description: "Вагонка из ольхи: не нагревается и не выделяет смол, подходит для парилок.",
			Price:       340, Image: imgLumber, Category: "Вагонка", InStock: false, Unit: "м²",
			WoodType: "Ольха", Thickness: mm(16), Width: mm(90), Length: mm(3000),
			Grade: gradePremium, Moisture: moistureKiln, SurfaceTreatment: treatTongued, Purpose: purposeFinish,
		},
		{
			ID:          "9",
			Name:        "Доска террасная 25х150х4000",
			Description: "Террасная доска из экзотической древесины мербау, устойчива к влаге и гниению.",
			Price:       2800, Image: imgBoard, Category: "Доска строганная", InStock: true, Unit: "шт",
			WoodType: "Мербау", Thickness: mm(25), Width: mm(150), Length: mm(4000),
			Grade: gradePremium, Moisture: moistureKiln, SurfaceTreatment: treatPlaned, Purpose: purposeDecor,
		},
		{
			ID:          "10",
			Name:        "Доска необрезная 50х6000",
			Description: "Необрезная доска из берёзы для черновых работ, опалубки и хозяйственных построек.",
			Price:       150, Image: imgLumber, Category: "Пиломатериалы", InStock: true, Unit: "м",
			WoodType: "Берёза", Thickness: mm(50), Length: mm(6000),
			Grade: gradeThird, Moisture: moistureNatural, SurfaceTreatment: treatUnedged, Purpose: purposeBuild,
		},
		{
			ID:          "11",
			Name:        "Брус 50х50х3000",
			Description: "Брусок для обрешётки, лаг и каркасов перегородок.",
			Price:       95, Image: imgBeam, Category: "Брус", InStock: true, Unit: "шт",
			WoodType: "Сосна", Thickness: mm(50), Width: mm(50), Length: mm(3000),
			Grade: gradeSecond, Moisture: moistureNatural, SurfaceTreatment: treatEdged, Purpose: purposeBuild,
		},
		{
			ID:          "12",
			Name:        "Фанера ФСФ 12мм 1525x1525",
			Description: "Водостойкая фанера для строительных работ, опалубки, настила полов.",
			Price:       1750, Image: imgBuilding, Category: "Фанера и плиты", InStock: true, Unit: "лист",
			WoodType: "Берёза", Purpose: purposeBuild,
		},
		{
			ID:          "13",
			Name:        "Цемент ПЦ-400 50 кг",
			Description: "Портландцемент марки 400 производства Евроцемент. Применяется для приготовления бетонных смесей и штукатурных растворов.",
			Price:       360, Image: imgCement, Category: "Стройматериалы", InStock: true, Unit: "мешок",
		},
		{
			ID:          "14",
			Name:        "Гвозди строительные 100x4.0 мм",
			Description: "Гвозди строительные оцинкованные для крепления деревянных элементов конструкций.",
			Price:       180, Image: imgHardware, Category: "Метизы", InStock: true, Unit: "кг",
		},
		{
			ID:          "15",
			Name:        "Дрель ударная Bosch GSB 13 RE",
			Description: "Профессиональная ударная дрель для работы по бетону, металлу и дереву. Мощность 600 Вт, диаметр сверления бетона до 13 мм.",
			Price:       4900, Image: imgDrill, Category: "Инструменты", InStock: true, Unit: "шт",
		},
		{
			ID:          "16",
			Name:        "Краска фасадная Dulux 10л",
			Description: "Водно-дисперсионная фасадная краска для наружных работ. Устойчива к атмосферным воздействиям и УФ-излучению.",
			Price:       3200, Image: imgBuilding, Category: "Лакокрасочные материалы", InStock: true, Unit: "шт",
		},
		{
			ID:          "17",
			Name:        "Пенопласт ПСБ-С-25 50мм",
			Description: "Теплоизоляционные плиты из пенополистирола для утепления стен, полов, кровли.",
			Price:       250, Image: imgInsulation, Category: "Теплоизоляционные материалы", InStock: false, Unit: "лист",
		},
		{
			ID:          "18",
			Name:        "Кирпич облицовочный красный",
			Description: "Кирпич керамический лицевой одинарный красного цвета для облицовки фасадов.",
			Price:       25, Image: imgBrick, Category: "Стройматериалы", InStock: true, Unit: "шт",
		},
		{
			ID:          "19",
			Name:        "Рулетка Stanley 5м",
			Description: "Профессиональная рулетка с автостопом и магнитным крючком. Длина ленты 5 метров.",
			Price:       890, Image: imgTape, Category: "Инструменты", InStock: true, Unit: "шт",
		},
		{
			ID:          "20",
			Name:        "Саморезы по дереву 4.0x40 мм",
			Description: "Оцинкованные саморезы для крепления деревянных конструкций.",
			Price:       220, Image: imgScrews, Category: "Метизы", InStock: true, Unit: "кг",
		},
		{
			ID:          "21",
			Name:        "Утеплитель ROCKWOOL 50мм",
			Description: "Минераловатный утеплитель для теплоизоляции стен, потолков и кровли. Размер листа 1000x600 мм.",
			Price:       1200, Image: imgBuilding, Category: "Теплоизоляционные материалы", InStock: true, Unit: "упаковка",
		},
		{
			ID:          "22",
			Name:        "Масло для террасной доски 0,9л",
			Description: "Защитное масло для террасной доски и садовой мебели из дуба, лиственницы и тика.",
			Price:       1450, Image: imgBuilding, Category: "Лакокрасочные материалы", InStock: true, Unit: "шт",
			Purpose: purposeDecor,
		},
	}
}
