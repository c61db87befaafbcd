package osloplan

// baseURL is the authoritative source for all catalog documents.
// Fixture entries carry site-relative paths; they are resolved here.
const baseURL = "https://oslo.kommune.no"

// Fixture returns the versioned seed list of verified Oslo kommune
// planning documents. The returned slice is freshly allocated on every
// call; callers may mutate it freely.
func Fixture() []*Document {
	return []*Document{
		// Kommuneplan - foundation documents
		{
			Title:         "Kommuneplan for Oslo 2020-2035",
			Category:      CategoryKommuneplan,
			Subcategory:   "Overordnet plan",
			DocType:       "Kommuneplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/kommuneplan/",
			Description:   "Overordnet plan som viser hovedtrekkene i den fysiske, miljømessige, sosiale og kulturelle utviklingen i Oslo frem til 2035.",
			Department:    "Plan- og bygningsetaten",
			DatePublished: "2020-06-17",
			Priority:      3,
			Tags:          "kommuneplan,overordnet,byutvikling,2035,hovedplan",
		},
		{
			Title:         "Kommuneplanens arealdel 2020",
			Category:      CategoryKommuneplan,
			Subcategory:   "Arealdel",
			DocType:       "Arealdel",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/kommuneplan/arealdel/",
			Description:   "Juridisk bindende arealdel som styrer arealbruken i Oslo og danner grunnlag for detaljerte reguleringsplaner.",
			Department:    "Plan- og bygningsetaten",
			DatePublished: "2020-06-17",
			Priority:      3,
			Tags:          "arealdel,juridisk,arealbruk,regulering",
		},
		{
			Title:         "Kommunedelplan for klima og energi 2020-2030",
			Category:      CategoryKommuneplan,
			Subcategory:   "Klima og energi",
			DocType:       "Kommunedelplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/planlegging/kommunedelplaner/klima-og-energi/",
			Description:   "Strategisk plan for klimatiltak og energiomstilling med mål om klimanøytralitet innen 2030.",
			Department:    "Klima- og energietaten",
			DatePublished: "2020-09-23",
			Priority:      3,
			Tags:          "klima,energi,bærekraft,utslipp,klimanøytral",
		},

		// Byutvikling - major development areas
		{
			Title:         "Fjordbyen - helhetlig utviklingsstrategi",
			Category:      CategoryByutvikling,
			Subcategory:   "Fjordbyen",
			DocType:       "Utviklingsstrategi",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/planlegging/fjordbyen/",
			Description:   "Omfattende utviklingsstrategi for Oslos sjøfront fra Frognerkilen til Bekkelaget, med fokus på bærekraftig byutvikling.",
			Department:    "Plan- og bygningsetaten",
			DatePublished: "2008-05-21",
			Priority:      3,
			Tags:          "fjordbyen,vannfront,byutvikling,sjøfront,bærekraft",
		},
		{
			Title:         "Hovinbyen - områderegulering",
			Category:      CategoryByutvikling,
			Subcategory:   "Hovinbyen",
			DocType:       "Områderegulering",
			Status:        "Under behandling",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/planlegging/hovinbyen/",
			Description:   "Planlegging av ny bydel på Grorud med bolig, næring og grøntområder, knyttet til ny T-banestasjon.",
			Department:    "Plan- og bygningsetaten",
			DatePublished: "2019-03-15",
			Priority:      3,
			Tags:          "hovinbyen,grorud,ny_bydel,tbaneforbindelse",
		},
		{
			Title:         "Boligstrategi 2020-2030",
			Category:      CategoryByutvikling,
			Subcategory:   "Bolig",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/boligpolitikk/",
			Description:   "Helhetlig strategi for boligutvikling med mål om å sikre gode boliger for alle inntektsgrupper.",
			Department:    "Bolig- og sosiale tjenester",
			DatePublished: "2020-11-25",
			Priority:      2,
			Tags:          "bolig,strategi,rimelige_boliger,boligpolitikk",
		},

		// Transport - mobility and infrastructure
		{
			Title:         "Bymiljøpakke 3 - Oslo og Akershus",
			Category:      CategoryTransport,
			Subcategory:   "Kollektivtransport",
			DocType:       "Transportplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/transport/kollektivtransport/",
			Description:   "Omfattende satsing på kollektivtransport, sykkel og gange for å redusere biltrafikk og klimautslipp.",
			Department:    "Bymiljøetaten",
			DatePublished: "2016-06-22",
			Priority:      2,
			Tags:          "kollektiv,transport,bymiljø,klimatiltak",
		},
		{
			Title:         "Sykkelveiplan 2015-2025",
			Category:      CategoryTransport,
			Subcategory:   "Sykkel",
			DocType:       "Sektorplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/slik-bygges-oslo/transport/sykkel/",
			Description:   "Plan for utbygging av sammenhengende og trygt sykkelveisystem i hele Oslo.",
			Department:    "Bymiljøetaten",
			DatePublished: "2015-09-16",
			Priority:      2,
			Tags:          "sykkel,sykkelveier,transport,miljø,trygghet",
		},

		// Barn og unge - education and youth
		{
			Title:         "Skolebehovsplan 2020-2030",
			Category:      CategoryBarnOgUnge,
			Subcategory:   "Grunnskole",
			DocType:       "Behovsplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/skole/skolebehovsplan/",
			Description:   "Langsiktig plan for fremtidig skolebehov og kapasitet basert på befolkningsvekst og utbyggingsplaner.",
			Department:    "Utdanningsetaten",
			DatePublished: "2020-04-29",
			Priority:      2,
			Tags:          "skole,kapasitet,utbygging,grunnskole,elevtall",
		},
		{
			Title:         "Barnehageplan 2020-2030",
			Category:      CategoryBarnOgUnge,
			Subcategory:   "Barnehage",
			DocType:       "Sektorplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/barnehage/barnehageplan/",
			Description:   "Plan for barnehageutbygging og kvalitetsutvikling med full dekning som hovedmål.",
			Department:    "Utdanningsetaten",
			DatePublished: "2020-02-19",
			Priority:      2,
			Tags:          "barnehage,utbygging,kvalitet,barn,full_dekning",
		},
		{
			Title:         "Strategi for tidlig innsats 2020-2025",
			Category:      CategoryBarnOgUnge,
			Subcategory:   "Tidlig innsats",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/velferd/barn-og-unge/tidlig-innsats/",
			Description:   "Tverrsektoriell strategi for forebyggende arbeid og tidlig inngripen overfor barn og unge.",
			Department:    "Barne- og ungdomsetaten",
			DatePublished: "2020-01-22",
			Priority:      2,
			Tags:          "tidlig_innsats,forebygging,barn,unge,tverrsektoriell",
		},

		// Klima og miljø - climate and environment
		{
			Title:         "Klimabudsjett 2023",
			Category:      CategoryKlimaOgMiljo,
			Subcategory:   "Klimabudsjett",
			DocType:       "Budsjettdokument",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/miljo-og-klima/klimabudsjett/",
			Description:   "Årlig klimabudsjett som viser klimagassutslipp, mål og konkrete tiltak for utslippsreduksjon.",
			Department:    "Klima- og energietaten",
			DatePublished: "2022-11-30",
			Priority:      2,
			Tags:          "klima,budsjett,utslipp,tiltak,måling",
		},
		{
			Title:         "Handlingsplan for klimatilpasning",
			Category:      CategoryKlimaOgMiljo,
			Subcategory:   "Klimatilpasning",
			DocType:       "Handlingsplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/miljo-og-klima/klimatilpasning/",
			Description:   "Plan for tilpasning til klimaendringer med fokus på overvann, flom og ekstremvær.",
			Department:    "Klima- og energietaten",
			DatePublished: "2019-11-27",
			Priority:      2,
			Tags:          "klimatilpasning,overvann,flom,ekstremvær,resiliens",
		},
		{
			Title:         "Avfallsplan 2020-2035",
			Category:      CategoryKlimaOgMiljo,
			Subcategory:   "Avfall",
			DocType:       "Sektorplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/miljo-og-klima/avfall/",
			Description:   "Langsiktig plan for bærekraftig avfallshåndtering og sirkulær økonomi.",
			Department:    "Renovasjonsetaten",
			DatePublished: "2020-10-28",
			Priority:      2,
			Tags:          "avfall,resirkulering,sirkulær_økonomi,bærekraft",
		},

		// Helse og velferd - health and welfare
		{
			Title:         "Folkehelseplan 2019-2030",
			Category:      CategoryHelse,
			Subcategory:   "Folkehelse",
			DocType:       "Sektorplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/helse/folkehelseplan/",
			Description:   "Overordnet plan for folkehelsearbeid med fokus på å redusere sosial ulikhet i helse.",
			Department:    "Helseetaten",
			DatePublished: "2019-05-29",
			Priority:      2,
			Tags:          "folkehelse,sosial_ulikhet,forebygging,levekår",
		},
		{
			Title:         "Strategi mot fattigdom 2020-2030",
			Category:      CategoryHelse,
			Subcategory:   "Fattigdom",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/velferd/fattigdom/",
			Description:   "Helhetlig strategi for å bekjempe fattigdom og redusere sosial ulikhet i Oslo.",
			Department:    "Velferdsetaten",
			DatePublished: "2020-06-24",
			Priority:      2,
			Tags:          "fattigdom,sosial_ulikhet,velferd,inkludering",
		},
		{
			Title:         "Eldreplan 2020-2023",
			Category:      CategoryHelse,
			Subcategory:   "Eldre",
			DocType:       "Sektorplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/helse/eldre/",
			Description:   "Plan for utvikling av eldretjenester og aldersvennlig samfunn.",
			Department:    "Sykehjemsetaten",
			DatePublished: "2020-03-25",
			Priority:      2,
			Tags:          "eldre,omsorg,eldretjenester,aldersvennlig",
		},

		// Kultur og frivillighet - culture and community
		{
			Title:         "Kulturstrategi 2019-2030",
			Category:      CategoryKultur,
			Subcategory:   "Kultur",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/kultur/kulturstrategi/",
			Description:   "Helhetlig strategi for kulturutvikling og styrking av Oslos posisjon som kulturhovedstad.",
			Department:    "Kulturtjenestene",
			DatePublished: "2019-04-24",
			Priority:      1,
			Tags:          "kultur,kunst,kulturliv,kreative_næringer",
		},
		{
			Title:         "Idrettsstrategi 2020-2025",
			Category:      CategoryKultur,
			Subcategory:   "Idrett",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/kultur/idrett/",
			Description:   "Strategi for utvikling av idrett og fysisk aktivitet for alle aldersgrupper.",
			Department:    "Kulturtjenestene",
			DatePublished: "2020-08-26",
			Priority:      1,
			Tags:          "idrett,fysisk_aktivitet,anlegg,for_alle",
		},

		// Næring og innovasjon - business and innovation
		{
			Title:         "Næringsstrategi 2020-2030",
			Category:      CategoryNaering,
			Subcategory:   "Næring",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/naering/naeringsstrategi/",
			Description:   "Strategi for næringsutvikling og styrking av Oslos konkurransekraft.",
			Department:    "Næringsforvaltningen",
			DatePublished: "2020-12-16",
			Priority:      1,
			Tags:          "næring,innovasjon,konkurransekraft,arbeidsplasser",
		},
		{
			Title:         "Digital agenda for Oslo 2023-2027",
			Category:      CategoryNaering,
			Subcategory:   "Digitalisering",
			DocType:       "Strategiplan",
			Status:        "Vedtatt",
			URL:           baseURL + "/politikk-og-administrasjon/digitalisering/",
			Description:   "Helhetlig strategi for digital transformasjon og smart by-utvikling.",
			Department:    "Digitaliseringsetaten",
			DatePublished: "2023-01-25",
			Priority:      1,
			Tags:          "digitalisering,smart_by,teknologi,innovasjon",
		},
	}
}
