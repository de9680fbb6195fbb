package constants

// Redis key formats
const (
	// Revenue projections, dropped by the invalidation policy
	KeyPayoutMerchant           = "payoutMerchant:%s"           // Format: payoutMerchant:{merchant_id}
	KeyProductRevenueMerchant   = "productRevenueMerchant:%s"   // Format: productRevenueMerchant:{merchant_id}
	KeyAffiliateOwnRevenue      = "affiliateOwnRevenue:%s"      // Format: affiliateOwnRevenue:{affiliate_customer_id}
	KeyAffiliateMerchantRevenue = "affiliateMerchantRevenue:%s" // Format: affiliateMerchantRevenue:{merchant_id}
	KeyProductRevenue           = "productRevenue:%s"           // Format: productRevenue:{product_id}

	// Paid-customer counter, never invalidated
	KeyProductLimitCustomerCount = "productLimitCustomerCount:%s" // Format: productLimitCustomerCount:{product_id}

	// Auth
	KeyCustomerOTP          = "customer:otp:%s"                  // Format: customer:otp:{email}
	KeySignupToken          = "customer:signup:%s"               // Format: customer:signup:{token}
	KeyPasswordReset        = "customer:password-reset:%s"       // Format: customer:password-reset:{uid}
	KeyPasswordResetByEmail = "customer:password-reset:email:%s" // Format: customer:password-reset:email:{email}

	// Payment gateway
	KeyQPayAccessToken = "qpay:token"

	// Storefront
	KeyMerchantList = "merchantList"
)

// TTLMerchantList bounds how stale the public merchant list may get
const TTLMerchantList = 3600 // in seconds
