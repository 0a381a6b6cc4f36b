package geo

// DefaultTable is the built-in country table. Order is significant:
// buckets later in the table win ties (see Classifier). Patterns are
// probed against both raw and lowercased text, so capitalized entries
// behave as case-sensitive anchors.
var DefaultTable = []Bucket{
	{Label: "Украина", Patterns: []string{
		`\bАТО\b`, `аваков`, `авдеевк`, `\bАзов\b`, `алчевск`, `артемовск`, `бэтмен`, `бэтмэн`,
		`Верховн[а-я]{0,2} Рад[а-я]{0,2}`, `винниц`, `волновах`, `\bВСУ\b`, `горловк`, `гранитно`,
		`дебальце`, `днепр`, `днр`, `донбас`, `донетч`, `закарпат`,
		`донецк`, `дружковк`, `житомир`, `за ночь боевики`, `запорож`, `киборг`, `киев`, `краснодон`, `красном луче`,
		`крым`,
		`лнр`, `луганск`, `луганщин`, `львов`, `макеевк`, `мариупол`, `никишино`, `николаев`, `никопол`, `Новоросси[^й]`,
		`одесс`, `одесч`, `ольховатк`, `парубий`, `полтав`, `полторак`, `порошенко`, `правого сектора`, `пушилин`, `СБУ`,
		`семенченко`,
		`славянск`, `снбо`, `старобешево`, `стаханов`, `счасть`, `турчинов`, `тымчук`, `украин`, `укроборон`, `харьков`,
		`херсон`, `чернигов`, `черновц`, `яценюк`, `Весело`, `шахтерск`, `захарченко`, `геращенко`, `попасн`, `чермалык`,
		`франковск`,
		`зона боевых действий`, `лысенко`, `Изюм`, `Пески`, `\bполтав`, `красногоровк`, `марьинк`, `луценко`,
		`тернополь`, `\bТорез`, `Айдар`, `ОУН`,
		`углегорск`, `чернухино`, `лисичанск`, `докучаевск`, `Гнутово`, `Фащевк`, `краматорск`, `Ярош`, `Сартан`,
		`Широкино`, `Басурин`, `ГПУ`, `ГПСУ`, `Саакашвили`,
	}},
	{Label: "Азербайджан", Patterns: []string{
		`азербайдж`, `Баку`, `карабах`, `армян`, `ереван`, `Армени`, `бакинск`, `нахчыван`, `Агдаш`,
		`\bНардаран`, `Арцах`, `\bНКР\b`,
	}},
	{Label: "Грузия", Patterns: []string{
		`Абхази`, `вазиани`, `Гальск`, `Грузи[а-я]`, `грузин`, `кутаиси`, `сенаки`, `сухуми`, `тбилиси[^,]`,
		`цхинвали`, `джавахет`, `чахалян`, `\bПоти\b`, `\bПанкис`, `\bбатум`, `Аласан`, `Южн[а-я]{0,2} Осет[а-я]{0,2}`,
		`Маргвелашвили`,
		`Гарибашвили`, `Хидашели`, `Усупашвили`, `Гудаури`, `Сачхере`, `Крцаниси`, `Капанадзе`,
	}},
	{Label: "Турция", Patterns: []string{
		`анкар`, `\bРПК[^А-Я]`, `стамбул`, `турецк`, `турц`, `Аселсан`, `Отокар`, `Эрдоган`, `\bPKK\b`, `Давутоглу`,
	}},
	{Label: "Израиль", Patterns: []string{
		`IAI`, `\bГаз[аы]\b`, `Ганц`, `Голанах`, `Голанск`, `Голаны`, `Гуш-Эцион`, `Машаль`, `Халхуль`,
		`Яалон`, `беэр-шев`, `железный купол`, `иерусалим`, `израил`, `иуде[яи]`, `кнессет`, `либерман`, `магав`,
		`нетаниягу`, `палестин`, `рахат`, `самари`, `сектор[а-я]{0,3} газа`, `тель-авив`, `хайф`, `хамас`, `хеврон`,
		`цахал`, `шабак`,
	}},
	{Label: "Северный Кавказ", Patterns: []string{
		`Грозн`, `гудермес`, `дагестан`, `имарат`, `ингуш`, `кабард`, `КБР`, `кадыров`, `карабудах`, `карачаев`,
		`махачкал`, `назран`,
		`нальчик`, `Северн[а-я]{0,2} Осет[а-я]{0,2}`, `осетия`, `чечен`, `Чечн`, `хасавюрт`, `\bадыг`, `черкес`, `Хазбиев`,
		`Чиркейск`, `пятигорск`,
		`ставрополь`, `Северн[а-я]{0,3} Кавказ[а-я]{0,3}`, `владикавказ`, `дербент`,
	}},
	{Label: "Иран", Patterns: []string{
		`Иран`, `иранск`, `тегеран`, `Зариф`, `КСИР`, `\bИРИ\b`, `Роухани`, `ирано`,
	}},
	{Label: "Ливан", Patterns: []string{
		`\bливан`, `бейрут`, `насралла`, `хизбалла`,
	}},
	{Label: "Молдавия", Patterns: []string{
		`молдав`, `кишенев`, `кишинев`, `приднестров`, `тирасполь`, `Молдов`,
	}},
	{Label: "Ирак", Patterns: []string{
		`Ирак[^л]`, `\bиракск`, `багдад`, `мосул`, `Дияла`, `Киркук`, `Тикрит`, `Рамади\b`, `\bАнбар\b`,
	}},
	{Label: "Афганистан", Patterns: []string{
		`афган`, `кандагар`, `кабул`, `кундуз`,
	}},
	{Label: "Пакистан", Patterns: []string{
		`пакистан`, `исламабад`, `пешавар`, `техрике`,
	}},
	{Label: "Средняя Азия", Patterns: []string{
		`Астан`, `\bказах`, `киргиз`, `кыргыз`, `таджик`, `туркмен`, `узбек`, `душанбе`,
	}},
	{Label: "Сирия", Patterns: []string{
		`\bсири`, `алеппо`, `дамаск`, `кобани`, `нусра`, `ракк`, `башар`, `Асад`, `хасика`, `Пальмир`, `Дейр[ -]эз-Зор`,
		`Латаки`, `Кунейтр`, `Хомс[а-я]{0,2}`, `Дараа`, `Идлеб`, `\bХама\b`, `\bХасаке\b`, `Хмеймим`, `\bСАР\b`,
		`Камышли`, `\bPYD\b`,
	}},
	{Label: "Магриб", Patterns: []string{
		`\bЛивии`, `\bливию`, `алжир`, `\bливийск`, `\bливия`, `\bтунис`, `марокк`, `туарег`, `мавритан`,
	}},
	{Label: "Египет", Patterns: []string{
		`египет`, `египт`, `\bкаир`, `синай`, `синая`, `синае`, `Шарм-эль-Шейх`,
	}},
	{Label: "арабы ЗПЗ", Patterns: []string{
		`бахрейн`, `йемен`, `катар`, `кувейт`, `оаэ`, `саудовск`, `\bоман`, `эр-рияд`,
	}},
	{Label: "Ливан", Patterns: []string{
		`\bливан`, `хезболла`, `бейрут`,
	}},
	{Label: "Индия", Patterns: []string{
		`\bинди[^авг]`, `Дели `, `мумбаи`,
	}},
	{Label: "Иордания", Patterns: []string{
		`иордан`, `\bАмман`,
	}},
	{Label: "Канада", Patterns: []string{
		`канад`, `оттав`,
	}},
	{Label: "Европа", Patterns: []string{
		`\bавстри`, `\bалбан`, `\bангли`, `\bафин`, `\bбалтик`, `\bбелград`, `\bбельг`, `\bберлин`, `\bболгар`,
		`\bвена\b`, `\bвенгер`, `\bвенгр`, `\bвене `, `\bгреци`, `\bдании`, `\bдатск`, `\bес\b`, `\bиспан`,
		`\bитали`, `\bкипр`, `\bкосов[оес]`, `\bлатви`, `\bлитв[аеуы]`, `\bмилан`, `\bнато\b`, `\bнемец`,
		`\bницц`, `\bпольс`, `\bриг[а-я]{0,2}\b`, `\bрим\b`, `\bрима\b`, `soir`, `бридлав`, `британ`, `брюссел`,
		`бундес`, `варшав`, `герман`, `голланд`, `греческ`, `европ[^о]`, `евросоюз`, `женев[ае]`, `ирланд`, `исланд`,
		`итальян`, `копенгаген`, `лейпциг`, `литовск`, `лондон`, `мадрид`, `македони`, `марсел`, `меркель`, `нидерланд`,
		`норвеги`, `норвежск`, `олланд`, `париж`, `польш`, `португал`, `расмуссен`, `румын`, `сааб`, `североатлант`,
		`серби`, `скопье`, `словак`, `словен`, `стокгольм`, `талес`, `финлянд`, `финск`, `франкфурт`, `франц[а-я]{2,}`,
		`фрг`,
		`хорват`, `цюрих`, `черногор`, `чехи`, `чешск`, `швед`, `швейцар`, `швеци`, `эстон`, `\bмальт[аеуы]\b`,
		`\bандор[аеуы]\b`, `Кэмерон`,
	}},
	{Label: "Китай", Patterns: []string{
		`китай`, `китае`, `китая`, `китаю`, `пекин`, `гонконг`, `КНР`, `тайван`,
	}},
	{Label: "Корея", Patterns: []string{
		`Корея`, `Кореи`, `Корею`, `кндр`, `пхеньян`, `сеул`, `корейск`, `Ким Чен`,
	}},
	{Label: "Япония", Patterns: []string{
		`япон`, `токио`, `Абэ`, `Синдзо`,
	}},
	{Label: "США", Patterns: []string{
		`американ`, `вашингтон`, `Обама`, `пентагон`, `США`, `теннесси`, `цру`, `маккейн`, `нью-йорк`, `техас`, `канзас`,
		`керри`,
		`госсекретар`, `калифорн`, `nasa`, `огайо`, `фбр`, `флорид`, `АНБ`, `НАСА`, `Райс`, `Байден`, `госдеп`,
		`Lockheed`,
		`Локхид Мартин`, `Рейтеон`, `Балтимор`,
	}},
	{Label: "Австралия", Patterns: []string{
		`австрал`, `\bсидне`, `мельбурн`,
	}},
	{Label: "ЮгоВосточная Азия", Patterns: []string{
		`бруней`, `вьетнам`, `индонез`, `камбодж`, `\bлаос`, `малайз`, `малазий`, `мьянм`, `сингапур`, `таиланд`,
		`\bтимор`, `филиппин`,
		`бангкок`, `бангладеш`, ` тайск`, `\bнепал`,
	}},
	{Label: "Латинская Америка", Patterns: []string{
		`аргентин`, `болив`, `бразил`, `венесуэл`, `колумб`, `мексик`, `\bперу`, `чилий`, `парагва`, `уругва`,
		`монтевидео`, `сантьяго`,
		` чилийск`, `Чили`, `Мехико`, `карибск`, `никарагуа`, `\bкубинск`, `Куб[а-я]\b`, `эквадор`,
	}},
	{Label: "Африка", Patterns: []string{
		`боко харам`, `бурунди`, `конго`, `либери`, `могадишо`, `\bнигер`, `сомалий`, `\bсудан`, `сьерра-леоне`,
		`шабаб`, `Мали\b`, `танзан`, `камерун`, `боко-харам`, `замби`, `гвине`, `малийск`, `африк`, `\bкени[яюйи]`,
		`сенегал`,
		`\bангол`, `ЦАР`, `Бенин`, `Габон`, `ЮАР`, `эфиоп`, `джибут`, `\bБуркина`, `\bЧаде\b`, `\bЧада\b`,
		`Сомали`,
	}},
}
